package kson

import (
	"context"
	"log/slog"

	"github.com/go-kit/log"
	slgk "github.com/tjhop/slog-gokit"
)

// GoKitLogger adapts a go-kit logger so parse diagnostics reach it.
// Level filters installed on the go-kit side still apply.
func GoKitLogger(logger log.Logger) *slog.Logger {
	return slog.New(slgk.NewGoKitHandler(logger, slog.LevelDebug))
}

// logError logs a parse failure with its position
func (p *Parser) logError(err *ParseError) {
	if !p.config.LogErrors {
		return
	}

	p.logger.ErrorContext(context.Background(), "JSON parsing failed",
		slog.Int("row", err.Row),
		slog.Int("col", err.Col),
		slog.String("error", err.Message),
	)
}

// logDuplicateKey emits the advisory diagnostic for a repeated object key
func (p *Parser) logDuplicateKey(key string) {
	p.logger.WarnContext(context.Background(), "key is not unique",
		slog.String("key", key),
		slog.Int("row", p.row),
		slog.Int("col", p.col),
	)
}
