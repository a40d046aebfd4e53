// Package app wires configuration, the catalog, services, and HTTP routing
// into a runnable explorer application.
package app

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"catalog-explorer/internal/api"
	"catalog-explorer/internal/catalog"
	"catalog-explorer/internal/config"
	"catalog-explorer/internal/middleware"
	"catalog-explorer/internal/service/explorer"
	"catalog-explorer/internal/ui"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Catalog  *catalog.Store
	Explorer *explorer.Service
	Router   http.Handler
}

// New loads the catalog and builds the services and router.
func New(deps Deps) (*App, error) {
	store, err := loadCatalog(deps.Cfg, deps.Logger)
	if err != nil {
		return nil, err
	}

	svc := explorer.NewService(store, deps.Logger.With("component", "explorer"))

	return &App{
		Catalog:  store,
		Explorer: svc,
		Router:   newRouter(deps, svc, store),
	}, nil
}

func newRouter(deps Deps, svc *explorer.Service, store *catalog.Store) http.Handler {
	cfg := deps.Cfg

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(deps.Logger.With("component", "http")))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"assets": store.Len(),
		})
	})

	apiHandler := api.NewHandler(svc, deps.Logger.With("component", "api"))
	r.Route("/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
		r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
		apiHandler.Routes(r)
	})

	if cfg.UIEnabled {
		ui.MountRoutes(r, ui.NewHandler(svc))
	}
	return r
}
