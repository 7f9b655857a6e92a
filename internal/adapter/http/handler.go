package httpadapter

import (
	"adsync/internal/config/configs"
	"adsync/internal/core/port"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services are the inbound ports served over HTTP.
type Services struct {
	Sync      port.SyncUseCase
	Campaigns port.CampaignUseCase
	Bulk      port.BulkUseCase
	Alerts    port.AlertUseCase
	Admitter  port.Admitter
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Every /api/v1 route runs behind principal resolution; all of them except
// /sync also pass the api admission policy. Sync is admitted by the
// reconciler itself under the sync policy.
type Handler struct {
	svc      Services
	auth     configs.Auth
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, auth configs.Auth, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger, validate: newValidator()}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/sync", h.handleSync)

		r.Group(func(r chi.Router) {
			r.Use(h.admit(port.PolicyAPI))

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/bulk", h.handleBulk)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleArchiveCampaign)
			r.Post("/campaigns/{id}/duplicate", h.handleDuplicate)
			r.Post("/campaigns/{id}/publish", h.handlePublish)

			r.Get("/alerts", h.handleListAlerts)
			r.Patch("/alerts/{id}/read", h.handleMarkAlertRead)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
