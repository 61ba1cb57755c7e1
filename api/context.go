package api

import (
	"context"
	"log/slog"
)

type ctxKey string

const ctxLoggerKey ctxKey = "LOGGER"

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

func getLoggerFromCtx(ctx context.Context) *slog.Logger {
	return ctx.Value(ctxLoggerKey).(*slog.Logger)
}
