// SPDX-License-Identifier: MIT

package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey string

const runIDKey ctxKey = "run_id"

// ContextWithRunID stores the provided run ID in the context.
// The watch command increments it for every rebuild.
func ContextWithRunID(ctx context.Context, id int) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run ID from context if present.
func RunIDFromContext(ctx context.Context) (int, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(runIDKey).(int)
	return id, ok
}

// WithContext enriches the supplied logger with fields from ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	id, ok := RunIDFromContext(ctx)
	if !ok {
		return logger
	}
	return logger.With().Int(FieldRunID, id).Logger()
}

// FromContext returns the logger stored in ctx, or the base logger
// enriched with the context's run ID.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	l := WithContext(ctx, Base())
	return &l
}
