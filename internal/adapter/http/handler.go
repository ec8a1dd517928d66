package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"ads-campaigns/internal/core/port"
)

const requestIDHeader = "X-Request-ID"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a BannerUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc     port.BannerUseCase
	logger  *slog.Logger
	router  chi.Router
	metrics http.Handler
}

// NewHandler creates a handler with all routes configured. metrics may be
// nil, in which case /metrics is not served.
func NewHandler(svc port.BannerUseCase, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: metrics}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/banners", h.handleAllBanners)
		r.Get("/campaigns/{campaignID}/banners", h.handleCampaignBanners)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestID echoes the caller's X-Request-ID or assigns a new one.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error",
			slog.String("request_id", w.Header().Get(requestIDHeader)),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
}

// writeError maps usecase errors to status codes. Storage failures are
// logged; the message never reaches the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, port.ErrStorageUnavailable):
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	h.logger.Error(op+" error",
		slog.String("request_id", w.Header().Get(requestIDHeader)),
		slog.String("path", r.URL.Path),
		slog.Any("error", err))
}
