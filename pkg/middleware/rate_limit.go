package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	apperrors "venuehall/pkg/errors"
	"venuehall/pkg/logger"
	"venuehall/pkg/ratelimit"
)

// Profile configures one gated operation.
type Profile struct {
	MaxTokens int
	Window    time.Duration
}

// RouteLimiter applies a shared token-bucket gate per route, keyed
// operation:resource:caller. A 429 here is distinct from a booking
// conflict: the caller retries the same window later, not another window.
type RouteLimiter struct {
	gate *ratelimit.Limiter
	log  *logger.Logger
}

func NewRouteLimiter(gate *ratelimit.Limiter, log *logger.Logger) *RouteLimiter {
	return &RouteLimiter{
		gate: gate,
		log:  log,
	}
}

func (rl *RouteLimiter) Limit(operation string, p Profile) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			key := operation + ":" + resourceKey(ps) + ":" + callerKey(r)

			res := rl.gate.Allow(key, p.MaxTokens, p.Window)
			if !res.Allowed {
				rl.log.Warn("Rate limit exceeded",
					"request_id", requestID(r),
					"operation", operation,
					"key", key,
					"path", r.URL.Path,
				)

				appErr := apperrors.RateLimited(res.Reset.Milliseconds())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(appErr.StatusCode())
				_ = json.NewEncoder(w).Encode(map[string]any{
					"code":    appErr.Code,
					"error":   appErr.Message,
					"details": appErr.Details,
				})
				return
			}

			next(w, r, ps)
		}
	}
}

func resourceKey(ps httprouter.Params) string {
	if id := ps.ByName("id"); id != "" {
		return id
	}
	return "-"
}

// callerKey prefers the authenticated subject so one customer cannot
// starve another behind a shared NAT; anonymous callers fall back to IP.
func callerKey(r *http.Request) string {
	if subject := Subject(r.Context()); subject != "" {
		return subject
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "anon"
	}
	return host
}
