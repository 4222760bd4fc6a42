package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"venuehall/pkg/logger"
	"venuehall/pkg/ratelimit"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
}

func TestRouteLimiterDeniesSecondCall(t *testing.T) {
	gate := ratelimit.New()
	defer gate.Stop()

	rl := NewRouteLimiter(gate, testLogger())
	handler := rl.Limit("avail", Profile{MaxTokens: 1, Window: time.Minute})(
		func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			w.WriteHeader(http.StatusOK)
		},
	)

	call := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/venues/v_1/availability", nil)
		req.RemoteAddr = "10.0.0.7:54321"
		rec := httptest.NewRecorder()
		handler(rec, req, httprouter.Params{{Key: "id", Value: "v_1"}})
		return rec.Code
	}

	if got := call(); got != http.StatusOK {
		t.Fatalf("first call status = %d, want 200", got)
	}
	if got := call(); got != http.StatusTooManyRequests {
		t.Fatalf("second call status = %d, want 429", got)
	}
}

func TestRouteLimiterSeparatesOperations(t *testing.T) {
	gate := ratelimit.New()
	defer gate.Stop()

	rl := NewRouteLimiter(gate, testLogger())
	ok := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	}
	availHandler := rl.Limit("avail", Profile{MaxTokens: 1, Window: time.Minute})(ok)
	bookHandler := rl.Limit("book", Profile{MaxTokens: 1, Window: time.Minute})(ok)

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = "10.0.0.7:54321"

	rec := httptest.NewRecorder()
	availHandler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("avail call status = %d, want 200", rec.Code)
	}

	// exhausting the availability gate must not consume booking tokens
	rec = httptest.NewRecorder()
	bookHandler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("book call status = %d, want 200", rec.Code)
	}
}
