// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Time       *handlers.TimeHandler
	Auth       *handlers.AuthHandler
	Overview   *handlers.OverviewHandler
	Hours      *handlers.HoursHandler
	Events     *handlers.EventHandler
	Specials   *handlers.SpecialHandler
	Categories *handlers.CategoryHandler
	Items      *handlers.ItemHandler
	Stories    *handlers.StoryHandler
	Media      *handlers.MediaHandler
}

// crud is the handler set of a handlers.Resource.
type crud interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// mountCRUD registers public reads and admin writes for one resource.
// extra runs first so static paths such as /status register next to /{id}.
func mountCRUD(r chi.Router, h crud, admin func(http.Handler) http.Handler, extra func(r chi.Router)) {
	if extra != nil {
		extra(r)
	}
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.With(admin).Post("/", h.Create)
	r.With(admin).Put("/{id}", h.Update)
	r.With(admin).Delete("/{id}", h.Delete)
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Reads under /api/v1
// are public; a bearer token on a read widens it to drafts and inactive
// entries. Writes require a valid admin token.
func NewRouter(h Handlers, auth ports.AuthService, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	admin := middleware.Chain(middleware.RequireAdmin(auth), middleware.NoStore())

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)
	r.Get("/health/time", h.Time.Now)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.IdentifyAdmin(auth))

		r.Post("/auth/login", h.Auth.Login)
		r.With(admin).Get("/auth/me", h.Auth.Me)

		r.Get("/overview", h.Overview.Overview)
		r.Get("/time/convert", h.Time.Convert)

		r.Route("/hours", func(r chi.Router) {
			mountCRUD(r, h.Hours, admin, func(r chi.Router) {
				r.Get("/status", h.Hours.Status)
				r.With(admin).Put("/", h.Hours.ReplaceWeek)
			})
		})
		r.Route("/events", func(r chi.Router) {
			mountCRUD(r, h.Events, admin, func(r chi.Router) {
				r.Get("/active", h.Events.Active)
			})
		})
		r.Route("/specials", func(r chi.Router) {
			mountCRUD(r, h.Specials, admin, func(r chi.Router) {
				r.Get("/today", h.Specials.Today)
			})
		})
		r.Route("/categories", func(r chi.Router) { mountCRUD(r, h.Categories, admin, nil) })
		r.Route("/items", func(r chi.Router) { mountCRUD(r, h.Items, admin, nil) })
		r.Route("/stories", func(r chi.Router) { mountCRUD(r, h.Stories, admin, nil) })

		// Media is nil when uploads are disabled.
		if h.Media != nil {
			r.Route("/media", func(r chi.Router) {
				r.Use(admin)
				r.Post("/", h.Media.Upload)
				r.Delete("/{key}", h.Media.Delete)
			})
		}
	})

	return r
}
