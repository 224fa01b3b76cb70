package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Logger records audit events.
//
// Implementations must never fail the caller: a storage failure is a
// diagnostic concern, not a reason to abort the operation being audited.
type Logger interface {
	// Log records an action. The result defaults to success; use
	// WithResult or WithError to override.
	Log(ctx context.Context, action string, opts ...EventOption)
}

type logger struct {
	storage Storage
	log     *slog.Logger
	now     func() time.Time
}

// Option configures the audit logger.
type Option func(*logger)

// WithSlog sets the slog logger used to report swallowed storage failures.
func WithSlog(log *slog.Logger) Option {
	return func(l *logger) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(l *logger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLogger creates an audit logger backed by storage.
func NewLogger(storage Storage, opts ...Option) Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	l := &logger{
		storage: storage,
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log records an action. Storage failures are logged and swallowed.
func (l *logger) Log(ctx context.Context, action string, opts ...EventOption) {
	event := Event{
		ID:        uuid.New().String(),
		Timestamp: l.now(),
		Action:    action,
		Result:    ResultSuccess,
	}
	for _, opt := range opts {
		opt(&event)
	}

	if err := event.Validate(); err != nil {
		l.log.Warn("audit event rejected", "action", action, "error", err)
		return
	}

	if err := l.storage.Store(ctx, event); err != nil {
		l.log.Warn("audit write failed", "action", action, "error", err)
	}
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards all events.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Log(context.Context, string, ...EventOption) {}
