package kvstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/ports"
)

const defaultFileName = "storage.json"

// JSONStore keeps every key in one JSON object on disk.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

type JSONOption func(*JSONStore)

// WithFileName overrides the storage file name inside the store directory.
func WithFileName(name string) JSONOption {
	return func(s *JSONStore) {
		if name != "" {
			s.path = filepath.Join(filepath.Dir(s.path), name)
		}
	}
}

func NewJSONStore(dir string, opts ...JSONOption) *JSONStore {
	s := &JSONStore{path: filepath.Join(dir, defaultFileName)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.KeyValueStore = (*JSONStore)(nil)

// Path returns the backing file.
func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	return s.save(m)
}

func (s *JSONStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.save(m)
}

func (s *JSONStore) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "kvstore.json.read",
			Kind: domain.KindStorage,
			Path: s.path,
			Err:  err,
		}
	}

	m := map[string]string{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, &domain.OpError{
			Op:   "kvstore.json.decode",
			Kind: domain.KindStorage,
			Path: s.path,
			Err:  err,
		}
	}
	return m, nil
}

func (s *JSONStore) save(m map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "kvstore.json.mkdir",
			Kind: domain.KindStorage,
			Path: dir,
			Err:  err,
		}
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "kvstore.json.marshal",
			Kind: domain.KindStorage,
			Path: s.path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "kvstore.json.write",
			Kind: domain.KindStorage,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "kvstore.json.rename",
			Kind: domain.KindStorage,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}
