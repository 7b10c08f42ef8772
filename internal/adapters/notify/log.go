package notify

import (
	"context"
	"slices"
	"strings"

	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/pkg/logger"
	"github.com/okian/giftmatch/pkg/metrics"
)

// LogNotifier writes rendered notifications to the log. It stands in for a
// mail or API backend.
type LogNotifier struct {
	recipients []string
	log        logger.Logger
}

var _ Notifier = (*LogNotifier)(nil)

// Option applies a configuration option to the LogNotifier.
type Option func(*LogNotifier)

// WithLogger sets the logger notifications are written to.
func WithLogger(l logger.Logger) Option {
	return func(n *LogNotifier) {
		if l != nil {
			n.log = l
		}
	}
}

// NewLogNotifier creates a LogNotifier for recipients.
func NewLogNotifier(recipients []string, opts ...Option) *LogNotifier {
	n := &LogNotifier{recipients: slices.Clone(recipients), log: logger.Nop()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify renders n and logs it. With no recipients configured it logs a
// warning and skips.
func (l *LogNotifier) Notify(ctx context.Context, n model.Notification) error {
	if len(l.recipients) == 0 {
		metrics.RecordNotification(metrics.NotificationSkipped)
		l.log.Warn(ctx, "no notification recipients configured, skipping",
			logger.String("assessment_id", n.AssessmentID))
		return nil
	}

	msg := Render(l.recipients, n)
	l.log.Info(ctx, "assessment notification",
		logger.String("assessment_id", n.AssessmentID),
		logger.String("to", strings.Join(msg.To, ",")),
		logger.String("subject", msg.Subject),
		logger.String("body", msg.Body),
	)
	return nil
}
