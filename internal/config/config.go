// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load layers an optional YAML file and GIFTS_ environment variables on top.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
	"net/url"
	"slices"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreDriver selects the assessment store: memory or sqlite.
	StoreDriver string `koanf:"store_driver"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `koanf:"sqlite_path"`

	// QuestionsFile optionally supplies question text.
	QuestionsFile string `koanf:"questions_file"`

	// NotifyQueueSize bounds the in-memory notification queue.
	NotifyQueueSize int `koanf:"notify_queue_size"`

	// NotifyWorkerCount sets the number of notification workers.
	NotifyWorkerCount int `koanf:"notify_worker_count"`

	// NotifyRecipients is a comma separated list of staff addresses.
	NotifyRecipients string `koanf:"notify_recipients"`

	// BaseURL prefixes the result and admin links in notifications.
	BaseURL string `koanf:"base_url"`

	// DedupeSize bounds the idempotency key window.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxListLimit caps GET /admin/assessments?limit.
	MaxListLimit int `koanf:"max_list_limit"`

	// GiftRankWeights are the points given to the first, second and third
	// ranked gift.
	GiftRankWeights []int `koanf:"gift_rank_weights"`

	InterestWeight   int `koanf:"interest_weight"`
	PassionWeight    int `koanf:"passion_weight"`
	SkillWeight      int `koanf:"skill_weight"`
	OpportunityLimit int `koanf:"opportunity_limit"`
}

// New creates a Config holding the defaults. The context is reserved for
// loaders that need it.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		StoreDriver:       StoreMemory,
		SQLitePath:        "data/giftmatch.db",
		NotifyQueueSize:   1024,
		NotifyWorkerCount: 2,
		BaseURL:           "https://mvcc-spiritual-gifts.vercel.app",
		DedupeSize:        50_000,
		MaxListLimit:      500,
		GiftRankWeights:   []int{5, 4, 3},
		InterestWeight:    3,
		PassionWeight:     2,
		SkillWeight:       2,
		OpportunityLimit:  3,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch c.StoreDriver {
	case StoreMemory:
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite_path must be set for the sqlite driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: store_driver %q", ErrInvalidConfig, c.StoreDriver)
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base_url %q", ErrInvalidConfig, c.BaseURL)
	}
	if len(c.GiftRankWeights) == 0 {
		return fmt.Errorf("%w: gift_rank_weights must not be empty", ErrInvalidConfig)
	}
	for _, w := range c.GiftRankWeights {
		if w <= 0 {
			return fmt.Errorf("%w: gift_rank_weights must be positive", ErrInvalidConfig)
		}
	}
	positive := []struct {
		name string
		v    int
	}{
		{"notify_queue_size", c.NotifyQueueSize},
		{"notify_worker_count", c.NotifyWorkerCount},
		{"max_list_limit", c.MaxListLimit},
		{"interest_weight", c.InterestWeight},
		{"passion_weight", c.PassionWeight},
		{"skill_weight", c.SkillWeight},
		{"opportunity_limit", c.OpportunityLimit},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.DedupeSize < 0 {
		return fmt.Errorf("%w: dedupe_size must not be negative", ErrInvalidConfig)
	}
	return nil
}
