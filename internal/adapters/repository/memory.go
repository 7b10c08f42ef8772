package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/pkg/metrics"
)

// MemoryStore keeps assessments in process memory. Records are treated as
// immutable once saved.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]int
	items []model.Assessment // insertion order
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]int)}
}

func (s *MemoryStore) Save(_ context.Context, a model.Assessment) error {
	defer observe(opSave, time.Now())
	if a.ID == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[a.ID]; ok {
		metrics.RecordErrorByComponent("store", "duplicate_id")
		return fmt.Errorf("save %s: %w", a.ID, ErrDuplicateID)
	}
	s.byID[a.ID] = len(s.items)
	s.items = append(s.items, a)
	metrics.UpdateStoreRecords(len(s.items))
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (model.Assessment, error) {
	defer observe(opGet, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		metrics.RecordErrorByComponent("store", "not_found")
		return model.Assessment{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.items[i], nil
}

func (s *MemoryStore) List(_ context.Context, f model.ListFilter) ([]model.Assessment, error) {
	defer observe(opList, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Assessment, 0)
	for i := len(s.items) - 1; i >= 0; i-- {
		if f.Matches(s.items[i]) {
			matched = append(matched, s.items[i])
		}
	}
	sortNewestFirst(matched)
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	defer observe(opCount, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *MemoryStore) Close() error { return nil }
