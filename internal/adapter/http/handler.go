package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"traffic-sender/internal/core/port"
	"traffic-sender/internal/observability"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Automation port.AutomationUseCase
	Clicks     port.ClickUseCase
	URLs       port.URLUseCase
	Settings   port.SettingsUseCase
	Errors     port.ErrorLogUseCase
}

// Handler is the inbound HTTP adapter. It exposes the click redirect, the
// dashboard API, health and metrics on a chi.Router.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. requestTimeout
// bounds every request; zero disables the bound.
func NewHandler(svc Services, logger *slog.Logger, requestTimeout time.Duration) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/go/{campaignID}", h.handleClick)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns/{campaignID}", func(r chi.Router) {
			r.Get("/automation", h.handleAutomationStatus)
			r.Put("/automation", h.handleConfigureAutomation)
			r.Post("/automation/run", h.handleRunAutomation)
			r.Put("/multiplier", h.handleSetMultiplier)
			r.Get("/urls", h.handleListURLs)
			r.Post("/urls", h.handleCreateURL)
		})
		r.Get("/urls/warnings", h.handleListWarnings)
		r.Patch("/urls/{urlID}", h.handleUpdateURL)

		r.Get("/settings", h.handleGetSettings)
		r.Put("/settings", h.handleUpdateSettings)

		r.Get("/errors", h.handleListErrors)
		r.Delete("/errors", h.handleClearErrors)
		r.Post("/errors/{errorID}/resolve", h.handleResolveError)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
