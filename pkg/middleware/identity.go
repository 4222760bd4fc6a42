package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"venuehall/pkg/logger"
)

const SubjectKey contextKey = "subject"

// Identity resolves the caller from a bearer token into an opaque
// subject. Resolution is best-effort: a missing, malformed or expired
// token degrades to anonymous and never blocks the request.
func Identity(secret string, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := resolveSubject(r, secret)
			if subject != "" {
				ctx := context.WithValue(r.Context(), SubjectKey, subject)
				r = r.WithContext(ctx)
			} else if r.Header.Get("Authorization") != "" {
				log.Debug("Bearer token did not resolve, continuing as anonymous",
					"request_id", requestID(r),
					"path", r.URL.Path,
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveSubject(r *http.Request, secret string) string {
	if secret == "" {
		return ""
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "),
		func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return ""
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}

// Subject returns the resolved caller identity or "" for anonymous.
func Subject(ctx context.Context) string {
	if s, ok := ctx.Value(SubjectKey).(string); ok {
		return s
	}
	return ""
}
