package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Options configures the process logger.
type Options struct {
	Development bool
	SentryDSN   string
	Environment string
	Release     string
}

// Init builds the global logger and installs it as the slog default.
// Development: text at debug level. Production: JSON at info level.
// With a Sentry DSN, errors are also reported to Sentry.
func Init(opts Options) {
	handlers := []slog.Handler{stdoutHandler(os.Stdout, opts.Development)}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			Environment:      opts.Environment,
			Release:          opts.Release,
			TracesSampleRate: 0.2,
		})
		if err != nil {
			slog.Warn("sentry init failed, continuing without it", "error", err)
		} else {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	Log = slog.New(combine(handlers...))
	slog.SetDefault(Log)
}

// Flush waits for buffered Sentry events before shutdown.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

func stdoutHandler(w io.Writer, development bool) slog.Handler {
	if development {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}

func combine(handlers ...slog.Handler) slog.Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return slogmulti.Fanout(handlers...)
}
