package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting user from the request context
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if actor, ok := ctx.Value("actor").(string); ok && actor != "" {
		logger.Entry = logger.Entry.WithField("actor", actor)
	} else if email, ok := ctx.Value("email").(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("actor", email)
	} else {
		logger.Entry = logger.Entry.WithField("actor", "unknown")
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithSync adds the standard sync-run identification fields. Every log line
// emitted from inside a sync run should carry these.
func (l *Logger) WithSync(courseCanvasID int64, kind string) *Logger {
	return l.WithFields(map[string]interface{}{
		"course_canvas_id": courseCanvasID,
		"sync_kind":        kind,
	})
}
