package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/meridian-coop/backoffice/internal/auth"
	"github.com/meridian-coop/backoffice/internal/masterdata/categories"
	"github.com/meridian-coop/backoffice/internal/masterdata/products"
	"github.com/meridian-coop/backoffice/internal/masterdata/suppliers"
	"github.com/meridian-coop/backoffice/internal/platform/token"
	"github.com/meridian-coop/backoffice/internal/users"
)

// loginRateLimit caps credential attempts per IP per minute.
const loginRateLimit = 10

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	Tokens            *token.Manager
	AuthHandler       *auth.Handler
	SuppliersHandler  *suppliers.Handler
	ProductsHandler   *products.Handler
	CategoriesHandler *categories.Handler
	UsersHandler      *users.Handler
}

// NewRouter constructs the chi.Router for the reference backend.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(httprate.Limit(loginRateLimit, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			params.AuthHandler.MountPublic(public)
		})

		api.Group(func(private chi.Router) {
			private.Use(auth.RequireToken(params.Tokens))
			params.AuthHandler.MountPrivate(private)
			params.SuppliersHandler.MountRoutes(private)
			params.ProductsHandler.MountRoutes(private)
			params.CategoriesHandler.MountRoutes(private)
			params.UsersHandler.MountRoutes(private)
		})
	})

	return r
}
