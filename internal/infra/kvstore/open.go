package kvstore

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/ports"
)

// Store is a KeyValueStore that may hold resources.
type Store interface {
	ports.KeyValueStore
	io.Closer
}

type nopCloser struct{ ports.KeyValueStore }

func (nopCloser) Close() error { return nil }

// Open builds the backend selected by cfg, rooted at the workspace root.
func Open(root string, cfg domain.StorageConfig) (Store, error) {
	dir := cfg.Dir
	if strings.TrimSpace(dir) == "" {
		dir = domain.DefaultConfig().Storage.Dir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	switch cfg.Backend {
	case domain.BackendJSON, "":
		return nopCloser{NewJSONStore(dir)}, nil
	case domain.BackendSQLite:
		return NewSQLiteStore(dir)
	case domain.BackendMemory:
		return nopCloser{NewMemoryStore()}, nil
	default:
		return nil, &domain.OpError{
			Op:   "kvstore.open",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported storage backend %q: %w", cfg.Backend, domain.ErrInvalidConfig),
		}
	}
}
