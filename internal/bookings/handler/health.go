package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"venuehall/pkg/config"
	apperrors "venuehall/pkg/errors"
	httpresponse "venuehall/pkg/http"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Live)
	router.GET("/ready", h.Ready)
}

func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	_ = httpresponse.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready pings the store. Demo mode is always ready and says so, rather
// than pretending a store exists.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.cfg.DemoMode() {
		_ = httpresponse.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ready",
			"mode":   "demo",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.ReadTimeout)
	defer cancel()

	if err := h.cfg.Client.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.cfg.Log.Error("Readiness check failed", "error", err)
		_ = httpresponse.WriteError(w, apperrors.Unavailable("Reservation store"))
		return
	}

	_ = httpresponse.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
