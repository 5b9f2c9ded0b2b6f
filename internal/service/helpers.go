package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// operationLogger returns l enriched with the operation id carried by ctx.
func operationLogger(ctx context.Context, l *logger.Logger) *logger.Logger {
	if id, ok := utils.GetOperationIDFromContext(ctx); ok {
		return &logger.Logger{Logger: l.With().Str("operation_id", id).Logger()}
	}
	return l
}

// boundedContext applies d as a timeout. A non-positive d only adds
// cancellation.
func boundedContext(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
