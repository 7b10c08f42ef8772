// Package service provides the core business service behind the HTTP API
// and the CLI: it validates submissions, assembles results, stores them and
// hands notifications to the background workers.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/giftmatch/internal/adapters/export"
	"github.com/okian/giftmatch/internal/adapters/mq/queue"
	"github.com/okian/giftmatch/internal/adapters/mq/worker"
	"github.com/okian/giftmatch/internal/adapters/notify"
	"github.com/okian/giftmatch/internal/adapters/repository"
	"github.com/okian/giftmatch/internal/domain/assessment"
	"github.com/okian/giftmatch/internal/domain/catalog"
	"github.com/okian/giftmatch/internal/domain/dedupe"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/recommend"
	"github.com/okian/giftmatch/internal/domain/scoring"
	"github.com/okian/giftmatch/pkg/logger"
	"github.com/okian/giftmatch/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize    = 1024
	defaultWorkerCount  = 2
	defaultDedupeSize   = 50_000
	defaultMaxListLimit = 500
	defaultBaseURL      = "https://mvcc-spiritual-gifts.vercel.app"
)

// Service implements the API dependencies for the assessment system.
type Service struct {
	mu sync.Mutex

	// Core components
	store     repository.Store
	keys      dedupe.Keys
	queue     *queue.InMemoryQueue
	pool      *worker.Pool
	notifier  worker.Notifier
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	assembler *assessment.Assembler

	// Configuration
	engineOpts   []recommend.Option
	queueSize    int
	workerCount  int
	dedupeSize   int
	maxListLimit int
	baseURL      string
	now          func() time.Time
	newID        func() string

	started bool

	logger logger.Logger
}

// New constructs a Service. Components not supplied through options get
// in-memory defaults.
func New(opts ...Option) *Service {
	s := &Service{
		queueSize:    defaultQueueSize,
		workerCount:  defaultWorkerCount,
		dedupeSize:   defaultDedupeSize,
		maxListLimit: defaultMaxListLimit,
		baseURL:      defaultBaseURL,
		now:          time.Now,
		newID:        uuid.NewString,
		logger:       logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = catalog.New()
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	if s.keys == nil {
		s.keys = dedupe.NewInMemory(dedupe.WithMaxSize(s.dedupeSize))
	}
	if s.notifier == nil {
		s.notifier = notify.NewLogNotifier(nil, notify.WithLogger(s.logger.Named("notify")))
	}

	s.engine = recommend.NewEngine(s.catalog, s.engineOpts...)
	s.assembler = assessment.NewAssembler(scoring.NewCalculator(s.catalog), scoring.TopN, s.engine)
	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))

	return s
}

// Start launches the notification workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.pool = worker.NewPool(s.workerCount, s.queue, s.notifier, worker.WithLogger(s.logger))
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "assessment service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop drains pending notifications and closes the store.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if s.pool != nil {
		if err := s.pool.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop workers: %w", err))
		}
		s.pool = nil
	} else {
		_ = s.queue.Close()
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}

	s.started = false
	s.logger.Info(ctx, "assessment service stopped")
	return errors.Join(errs...)
}

// Catalog returns the reference tables.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Preview validates sub and computes its result without storing it.
func (s *Service) Preview(sub model.Submission) (assessment.Result, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return assessment.Result{}, err
	}
	res, err := s.assembler.Assemble(sub.Input())
	if err != nil {
		return assessment.Result{}, fmt.Errorf("assemble result: %w", err)
	}
	return res, nil
}

// Submit validates sub, computes its result and stores it. A repeated
// idempotency key returns the assessment created the first time. Storage
// failures fail the submission; notification failures never do.
func (s *Service) Submit(ctx context.Context, sub model.Submission) (model.Assessment, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		metrics.RecordErrorByComponent("service", "invalid_submission")
		return model.Assessment{}, err
	}

	id := s.newID()
	if sub.IdempotencyKey != "" {
		if prev, dup := s.keys.Claim(ctx, sub.IdempotencyKey, id); dup {
			metrics.RecordAssessmentDuplicate()
			return s.existing(ctx, prev)
		}
	}

	start := time.Now()
	res, err := s.assembler.Assemble(sub.Input())
	metrics.RecordAssembleLatency(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		s.release(ctx, sub.IdempotencyKey)
		return model.Assessment{}, fmt.Errorf("assemble result: %w", err)
	}
	for _, r := range res.Recommendations {
		metrics.RecordRecommendation(string(r.MatchType))
	}
	metrics.RecordOpportunities(len(res.Opportunities))

	a := model.Assessment{
		ID:            id,
		FirstName:     sub.FirstName,
		LastName:      sub.LastName,
		Email:         sub.Email,
		CreatedAt:     s.now().UTC(),
		Responses:     sub.Responses,
		TeamInterests: sub.TeamInterests,
		Passions:      sub.Passions,
		Skills:        sub.Skills,
		Result:        res,
	}
	if err := s.store.Save(ctx, a); err != nil {
		s.release(ctx, sub.IdempotencyKey)
		metrics.RecordErrorByComponent("service", "save_failed")
		s.logger.Error(ctx, "failed to save assessment", logger.String("id", id), logger.Error(err))
		return model.Assessment{}, fmt.Errorf("save assessment: %w", err)
	}
	metrics.RecordAssessmentSubmitted()

	s.enqueueNotification(ctx, a)
	return a, nil
}

func (s *Service) existing(ctx context.Context, id string) (model.Assessment, error) {
	a, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Assessment{}, fmt.Errorf("assessment %s: %w", id, ErrInProgress)
	}
	return a, err
}

func (s *Service) release(ctx context.Context, key string) {
	if key != "" {
		s.keys.Release(ctx, key)
	}
}

func (s *Service) enqueueNotification(ctx context.Context, a model.Assessment) {
	n := notify.Build(a, s.baseURL)
	if !s.queue.Enqueue(ctx, n) {
		s.logger.Warn(ctx, "notification dropped", logger.String("id", a.ID), logger.Int("queueLen", s.queue.Len()))
	}
}

// Result returns the public summary of assessment id.
func (s *Service) Result(ctx context.Context, id string) (model.Summary, error) {
	a, err := s.Detail(ctx, id)
	if err != nil {
		return model.Summary{}, err
	}
	return a.Summary(), nil
}

// Detail returns the full stored assessment. Malformed ids are reported as
// not found.
func (s *Service) Detail(ctx context.Context, id string) (model.Assessment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Assessment{}, fmt.Errorf("get %s: %w", id, repository.ErrNotFound)
	}
	return s.store.Get(ctx, id)
}

// List returns matching assessments, newest first. A missing or oversized
// limit is clamped to the configured maximum.
func (s *Service) List(ctx context.Context, f model.ListFilter) ([]model.Assessment, error) {
	if f.Limit <= 0 || f.Limit > s.maxListLimit {
		f.Limit = s.maxListLimit
	}
	return s.store.List(ctx, f)
}

// Export writes every stored assessment as CSV, newest first.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	all, err := s.store.List(ctx, model.ListFilter{})
	if err != nil {
		return fmt.Errorf("list assessments: %w", err)
	}
	return export.Write(w, all)
}

// Count returns the number of stored assessments.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// QueueLen returns the number of notifications waiting for delivery.
func (s *Service) QueueLen() int { return s.queue.Len() }
