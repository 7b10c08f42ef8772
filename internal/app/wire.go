package service

import (
	"context"
	"fmt"

	"github.com/okian/giftmatch/internal/adapters/notify"
	"github.com/okian/giftmatch/internal/adapters/repository"
	"github.com/okian/giftmatch/internal/config"
	"github.com/okian/giftmatch/internal/domain/catalog"
	"github.com/okian/giftmatch/internal/domain/recommend"
	"github.com/okian/giftmatch/pkg/logger"
)

// LoadCatalog builds the reference tables, merging question text from
// questionsFile when it is set, and refuses inconsistent data.
func LoadCatalog(ctx context.Context, questionsFile string) (*catalog.Catalog, error) {
	var opts []catalog.Option
	if questionsFile != "" {
		qs, err := catalog.LoadQuestions(ctx, questionsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, catalog.WithQuestions(qs))
	}
	c := catalog.New(opts...)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenStore opens the store selected by cfg.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		return repository.NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.StoreMemory:
		return repository.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: store_driver %q", config.ErrInvalidConfig, cfg.StoreDriver)
	}
}

// EngineOptions maps the weight settings of cfg onto the engine.
func EngineOptions(cfg *config.Config) []recommend.Option {
	return []recommend.Option{
		recommend.WithGiftWeights(cfg.GiftRankWeights...),
		recommend.WithInterestWeight(cfg.InterestWeight),
		recommend.WithPassionWeight(cfg.PassionWeight),
		recommend.WithSkillWeight(cfg.SkillWeight),
		recommend.WithOpportunityLimit(cfg.OpportunityLimit),
	}
}

// NewFromConfig builds a Service from cfg. The caller owns Start and Stop.
func NewFromConfig(ctx context.Context, cfg *config.Config, log logger.Logger) (*Service, error) {
	cat, err := LoadCatalog(ctx, cfg.QuestionsFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	recipients := notify.ParseRecipients(cfg.NotifyRecipients)
	return New(
		WithLogger(log),
		WithStore(store),
		WithCatalog(cat),
		WithNotifier(notify.NewLogNotifier(recipients, notify.WithLogger(log.Named("notify")))),
		WithEngineOptions(EngineOptions(cfg)...),
		WithQueueSize(cfg.NotifyQueueSize),
		WithWorkerCount(cfg.NotifyWorkerCount),
		WithDedupeSize(cfg.DedupeSize),
		WithBaseURL(cfg.BaseURL),
		WithMaxListLimit(cfg.MaxListLimit),
	), nil
}
