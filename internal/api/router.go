package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/100adim/project-cost-manager/internal/handler"
	"github.com/100adim/project-cost-manager/internal/middleware"
	"github.com/100adim/project-cost-manager/internal/service"
)

func NewRouter(h *handler.Handler, logs service.RequestLogs, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLog(logs, timeout))

	r.NotFound(handler.NotFound)
	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/about", h.About)

		r.Post("/users", h.CreateUser)
		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.GetUser)

		r.Post("/add", h.AddCost)
		r.Get("/report", h.Report)

		r.Get("/logs", h.ListRequestLogs)
	})

	return r
}
