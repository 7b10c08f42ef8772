// Package dedupe remembers submission idempotency keys so that a retried
// submission resolves to the assessment it already created.
package dedupe

import (
	"container/list"
	"context"
	"sync"
)

const defaultMaxSize = 50000

// Keys maps idempotency keys to the assessment IDs they produced.
type Keys interface {
	// Claim records key for id unless key is already known. When it is,
	// Claim returns the id recorded earlier and true.
	Claim(ctx context.Context, key, id string) (string, bool)

	// Release forgets key so that a failed submission can be retried.
	Release(ctx context.Context, key string)

	Size() int64
}

type record struct {
	key string
	id  string
}

// inMemoryKeys keeps keys in insertion order for oldest-first eviction.
type inMemoryKeys struct {
	mu      sync.Mutex
	byKey   map[string]*list.Element
	order   *list.List
	maxSize int
}

// NewInMemory creates an in-memory key store.
func NewInMemory(opts ...Option) Keys {
	k := &inMemoryKeys{
		maxSize: defaultMaxSize,
		byKey:   make(map[string]*list.Element),
		order:   list.New(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *inMemoryKeys) Claim(_ context.Context, key, id string) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if el, ok := k.byKey[key]; ok {
		return el.Value.(record).id, true
	}

	if k.maxSize > 0 && k.order.Len() >= k.maxSize {
		if oldest := k.order.Back(); oldest != nil {
			delete(k.byKey, oldest.Value.(record).key)
			k.order.Remove(oldest)
		}
	}
	k.byKey[key] = k.order.PushFront(record{key: key, id: id})
	return id, false
}

func (k *inMemoryKeys) Release(_ context.Context, key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if el, ok := k.byKey[key]; ok {
		delete(k.byKey, key)
		k.order.Remove(el)
	}
}

func (k *inMemoryKeys) Size() int64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return int64(k.order.Len())
}
