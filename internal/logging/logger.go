// Package logging is the structured logger shared by the server and the
// client. Call sites log through Logger and never import slog or zap
// directly; New picks the backend from configuration.
package logging

import (
	"context"
	"log/slog"
)

// Logger writes leveled records with alternating key/value attributes:
//
//	log.Warn(ctx, "mail delivery failed", "to", addr, "error", err)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return NewSlogLogger(slog.New(slog.DiscardHandler))
}
