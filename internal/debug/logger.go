// Package debug provides optional statement logging via log/slog.
package debug

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

// discardHandler mirrors slog.DiscardHandler, which requires Go 1.24.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var (
	mu     sync.RWMutex
	logger = slog.New(discardHandler{})
)

// Init enables or disables debug logging. When enabled, statements are
// logged to stderr at debug level.
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	if !enable {
		logger = slog.New(discardHandler{})
		return
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// SetLogger routes debug output to a caller-supplied logger.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = slog.New(discardHandler{})
	}
	logger = l
}

// Query logs one executed statement with its argument count and duration.
func Query(sql string, args int, d time.Duration, err error) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if err != nil {
		l.Debug("statement failed", "sql", sql, "args", args, "duration", d, "error", err)
		return
	}
	l.Debug("statement executed", "sql", sql, "args", args, "duration", d)
}
