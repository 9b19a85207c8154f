package middleware

import (
	"context"
	"net/http"

	"github.com/hugodevelopr/hugodeveloper/internal/site/requestctx"
)

// Environment attaches the deployment environment label to the request context
// so templates can render environment-specific state.
func Environment(value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestctx.WithEnvironment(r.Context(), value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EnvironmentFromContext returns the environment label for the current request,
// defaulting to "development" when unavailable.
func EnvironmentFromContext(ctx context.Context) string {
	return requestctx.Environment(ctx)
}
