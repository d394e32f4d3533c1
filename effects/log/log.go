package log

import (
	"context"
	"maps"
	"slices"

	"github.com/on-the-ground/stonecount/effects/internal/helper"
	effectmodel "github.com/on-the-ground/stonecount/effects/internal/model"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is the payload structure for the log effect.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

type zapHandler struct {
	logger *zap.Logger
}

func (h zapHandler) handle(payload LogPayload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for _, k := range slices.Sorted(maps.Keys(payload.Fields)) {
		fields = append(fields, zap.Any(k, payload.Fields[k]))
	}

	switch payload.Level {
	case LogInfo:
		h.logger.Info(payload.Message, fields...)
	case LogWarn:
		h.logger.Warn(payload.Message, fields...)
	case LogError:
		h.logger.Error(payload.Message, fields...)
	case LogDebug:
		h.logger.Debug(payload.Message, fields...)
	default:
		h.logger.Info(payload.Message, fields...)
	}
}

// WithZapEffectHandler registers a log effect handler backed by logger.
// The handler runs synchronously in the caller's goroutine.
// The teardown function syncs the logger and returns the parent context,
// which should be used for further operations.
func WithZapEffectHandler(
	ctx context.Context,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	ctxWith := context.WithValue(ctx, effectmodel.EffectLog, zapHandler{logger: logger})
	return ctxWith, func() context.Context {
		// Sync on a terminal's stderr fails with EINVAL; nothing to report there.
		_ = logger.Sync()
		return ctx
	}
}

// Effect emits a structured log through the handler registered in ctx.
// Panics if no log handler is registered.
func Effect(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	handler := helper.MustGetHandler[zapHandler](ctx, effectmodel.EffectLog)
	handler.handle(LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}
