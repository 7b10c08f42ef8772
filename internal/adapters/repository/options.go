package repository

import "time"

// SQLiteOption applies a configuration option to the SQLiteStore.
type SQLiteOption func(*sqliteSettings)

type sqliteSettings struct {
	busyTimeout  time.Duration
	maxOpenConns int
}

// WithBusyTimeout sets how long a writer waits on a locked database.
func WithBusyTimeout(d time.Duration) SQLiteOption {
	return func(s *sqliteSettings) {
		if d > 0 {
			s.busyTimeout = d
		}
	}
}

// WithMaxOpenConns caps the connection pool.
func WithMaxOpenConns(n int) SQLiteOption {
	return func(s *sqliteSettings) {
		if n > 0 {
			s.maxOpenConns = n
		}
	}
}
