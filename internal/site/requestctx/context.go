package requestctx

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerContextKey      contextKey = "github.com/hugodevelopr/hugodeveloper/internal/site/requestctx/logger"
	environmentContextKey contextKey = "github.com/hugodevelopr/hugodeveloper/internal/site/requestctx/environment"
)

const defaultEnvironment = "development"

var noopLogger = zap.NewNop()

// WithLogger stores the logger in context for downstream consumers.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// Logger retrieves the zap logger from context or returns a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return noopLogger
}

// NoopLogger exposes the shared noop logger instance used across the package.
func NoopLogger() *zap.Logger { return noopLogger }

// WithEnvironment records the deployment environment label on the context.
func WithEnvironment(ctx context.Context, env string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, environmentContextKey, env)
}

// Environment returns the environment label, defaulting to "development".
func Environment(ctx context.Context) string {
	if ctx == nil {
		return defaultEnvironment
	}
	if env, ok := ctx.Value(environmentContextKey).(string); ok && env != "" {
		return env
	}
	return defaultEnvironment
}
