// Package logging builds the CLI's diagnostic logger.
// It wraps log/slog with a text handler that omits timestamps, so diagnostic
// lines read like the rest of the command output.
package logging

import (
	"errors"
	"io"
	"log/slog"
)

// New returns a logger writing to w. Debug records are emitted only when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		return Discard()
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ErrorChain returns the message of err and of every error it wraps,
// outermost first. Joined errors are expanded depth-first.
func ErrorChain(err error) []string {
	chain := []string{}
	var walk func(error)
	walk = func(e error) {
		for e != nil {
			chain = append(chain, e.Error())
			if joined, ok := e.(interface{ Unwrap() []error }); ok {
				for _, inner := range joined.Unwrap() {
					walk(inner)
				}
				return
			}
			e = errors.Unwrap(e)
		}
	}
	walk(err)
	return chain
}
