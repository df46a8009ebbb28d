package ports

// KeyValueStore is client-local storage that survives restarts, scoped to one workspace.
// Get reports ok=false when the key has never been set or was deleted.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
