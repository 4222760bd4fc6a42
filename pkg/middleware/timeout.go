package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds each request's context. Handlers and the store
// observe ctx.Done(), so an abandoned request aborts before any write;
// the committer never leaves a partial reservation behind.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
