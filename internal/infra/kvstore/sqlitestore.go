package kvstore

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/ports"
)

const defaultDBName = "storage.db"

// SQLiteStore keeps keys in a single table of a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ ports.KeyValueStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) dir/storage.db.
func NewSQLiteStore(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.OpError{
			Op:   "kvstore.sqlite.mkdir",
			Kind: domain.KindStorage,
			Path: dir,
			Err:  err,
		}
	}

	path := filepath.Join(dir, defaultDBName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "kvstore.sqlite.open",
			Kind: domain.KindStorage,
			Path: path,
			Err:  err,
		}
	}
	// One writer per workspace; a single connection keeps writes serialized.
	db.SetMaxOpenConns(1)

	const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &domain.OpError{
			Op:   "kvstore.sqlite.schema",
			Kind: domain.KindStorage,
			Path: path,
			Err:  err,
		}
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.opErr("kvstore.sqlite.get", key, err)
	}
	return v, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return s.opErr("kvstore.sqlite.set", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return s.opErr("kvstore.sqlite.delete", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) opErr(op, key string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindStorage,
		Path: s.path + "#" + key,
		Err:  err,
	}
}
