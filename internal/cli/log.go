package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/go-theft-auto/clay"
)

// newLogger creates a logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// newLayoutContext creates a clay context whose debug output and errors go
// to the command's logger.
func newLayoutContext(ctx context.Context, d clay.Dimensions) *clay.Context {
	l := loggerFromContext(ctx)
	return clay.NewContext(d,
		clay.WithLogger(slog.New(l)),
		clay.WithErrorHandler(func(e clay.ErrorData) {
			l.Warn("layout error", "type", e.Type, "text", e.Text)
		}),
	)
}
