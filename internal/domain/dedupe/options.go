package dedupe

// Option applies a configuration option to the in-memory key store.
type Option func(*inMemoryKeys)

// WithMaxSize sets the maximum number of keys to remember.
// If maxSize > 0 the oldest key is evicted once the store is full.
// If maxSize <= 0 the store is unbounded.
func WithMaxSize(maxSize int) Option {
	return func(k *inMemoryKeys) {
		k.maxSize = maxSize
	}
}
