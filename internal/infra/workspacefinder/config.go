package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/formdraft/internal/domain"
)

// LoadConfig loads formdraft.yaml from the workspace root and applies defaults.
// When the file is missing the defaults are returned alongside a KindNotFound error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return ParseConfig(path, b)
}

// ParseConfig applies a formdraft.yaml document on top of the defaults.
func ParseConfig(path string, b []byte) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	fd := y.Formdraft

	if v := strings.TrimSpace(fd.Storage.Backend); v != "" {
		backend := domain.StorageBackend(strings.ToLower(v))
		switch backend {
		case domain.BackendJSON, domain.BackendSQLite, domain.BackendMemory:
			cfg.Storage.Backend = backend
		default:
			return cfg, invalidField(path, "storage.backend", fmt.Sprintf("unsupported backend %q", v))
		}
	}
	if fd.Storage.Dir != "" {
		cfg.Storage.Dir = fd.Storage.Dir
	}

	if fd.Client.Endpoint != "" {
		cfg.Client.Endpoint = fd.Client.Endpoint
	}
	if fd.Client.Timeout != "" {
		d, err := time.ParseDuration(fd.Client.Timeout)
		if err != nil || d <= 0 {
			return cfg, invalidField(path, "client.timeout", "must be a positive duration")
		}
		cfg.Client.Timeout = d
	}

	if fd.Server.Addr != "" {
		cfg.Server.Addr = fd.Server.Addr
	}
	if fd.Server.MetricsAddr != "" {
		cfg.Server.MetricsAddr = fd.Server.MetricsAddr
	}

	if fd.Notice.SuccessTTL != "" {
		d, err := time.ParseDuration(fd.Notice.SuccessTTL)
		if err != nil || d <= 0 {
			return cfg, invalidField(path, "notice.success_ttl", "must be a positive duration")
		}
		cfg.Notice.SuccessTTL = d
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Formdraft struct {
		Storage struct {
			Backend string `yaml:"backend"`
			Dir     string `yaml:"dir"`
		} `yaml:"storage"`

		Client struct {
			Endpoint string `yaml:"endpoint"`
			Timeout  string `yaml:"timeout"`
		} `yaml:"client"`

		Server struct {
			Addr        string `yaml:"addr"`
			MetricsAddr string `yaml:"metrics_addr"`
		} `yaml:"server"`

		Notice struct {
			SuccessTTL string `yaml:"success_ttl"`
		} `yaml:"notice"`
	} `yaml:"formdraft"`
}
