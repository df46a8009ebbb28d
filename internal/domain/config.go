package domain

import "time"

// Config represents the formdraft configuration loaded from formdraft.yaml.
type Config struct {
	Storage StorageConfig
	Client  ClientConfig
	Server  ServerConfig
	Notice  NoticeConfig
}

// StorageBackend selects the persistent storage implementation.
type StorageBackend string

const (
	BackendJSON   StorageBackend = "json"
	BackendSQLite StorageBackend = "sqlite"
	BackendMemory StorageBackend = "memory"
)

type StorageConfig struct {
	Backend StorageBackend
	Dir     string
}

type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type ServerConfig struct {
	Addr        string
	MetricsAddr string
}

type NoticeConfig struct {
	SuccessTTL time.Duration
}

// DefaultConfig provides sane defaults if formdraft.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Dir:     ".formdraft",
		},
		Client: ClientConfig{
			Endpoint: "http://localhost:8080/api/submit",
			Timeout:  30 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Notice: NoticeConfig{
			SuccessTTL: 3 * time.Second,
		},
	}
}
