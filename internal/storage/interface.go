package storage

// Provider is a key-value store of JSON-serialized values. One value per key;
// keys are namespaced per user via UserKey.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple myday processes against the same store path is
//     last-write-wins with no merge; `myday doctor` warns about it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get decodes the value under key into v. The bool reports whether the
	// key held a usable value; a corrupt value is logged and treated as
	// absent rather than propagated.
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
	Delete(key string) error

	// Keys lists stored keys with the given prefix.
	Keys(prefix string) ([]string, error)

	// Path returns the backing file path.
	Path() string
}
