// Package logging builds the slog loggers used by the engine and the CLI.
package logging

import (
	"log/slog"
	"os"
)

// New returns the application logger at the given level. Output goes to
// stderr so stdout stays clean for the chat REPL and piped JSON, and the
// "error" attribute key is shortened to "err" across all call sites.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything, for embedding contexts
// that bring no logger of their own.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
