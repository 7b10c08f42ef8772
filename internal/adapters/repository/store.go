// Package repository persists assessments and answers the admin queries
// over them.
package repository

import (
	"context"
	"time"

	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/pkg/metrics"
)

// Store provides read/write access to stored assessments.
type Store interface {
	// Save stores a new assessment. It returns ErrDuplicateID if the id is
	// already present.
	Save(ctx context.Context, a model.Assessment) error

	// Get returns the assessment stored under id or ErrNotFound.
	Get(ctx context.Context, id string) (model.Assessment, error)

	// List returns the assessments matching f, newest first.
	List(ctx context.Context, f model.ListFilter) ([]model.Assessment, error)

	// Count returns the number of stored assessments.
	Count(ctx context.Context) (int, error)

	Close() error
}

// Store operation names used as metric labels.
const (
	opSave  = "save"
	opGet   = "get"
	opList  = "list"
	opCount = "count"
)

func observe(op string, start time.Time) {
	metrics.RecordStoreLatency(op, float64(time.Since(start).Microseconds())/1000)
}
