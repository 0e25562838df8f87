package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/dig"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/handlers"
	"github.com/shivanisurendran/hostelparcel-management/internal/http/middleware"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
)

const requestTimeout = 5 * time.Second

// Params are the router dependencies resolved from the container.
type Params struct {
	dig.In

	Logger        logx.Logger
	Base          *handlers.Handlers
	Parcels       *handlers.ParcelHandler
	Auth          *handlers.AuthHandler
	Authenticator middleware.Authenticator
	HTTPMetrics   *middleware.HTTPMetrics
	Metrics       http.Handler `name:"metrics_handler" optional:"true"`
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(p Params) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(p.HTTPMetrics, p.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/ping", p.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(p.Base.HealthcheckHead))
	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", p.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth", p.Auth.Login)

		r.Route("/parcels", func(r chi.Router) {
			r.Use(middleware.RequireRole(p.Logger, p.Authenticator, domain.RoleMatron))
			r.Get("/", p.Parcels.Overview)
			r.Post("/", p.Parcels.Create)
			r.Get("/search", p.Parcels.Search)
			r.Post("/verify", p.Parcels.Verify)
			r.Get("/{id}", p.Parcels.GetByID)
		})

		r.With(middleware.RequireRole(p.Logger, p.Authenticator, domain.RoleStudent)).
			Get("/students/me/parcels", p.Parcels.Mine)
	})

	r.NotFound(p.Base.NotFound)
	r.MethodNotAllowed(p.Base.MethodNotAllowed)

	return r
}
