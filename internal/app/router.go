package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/veiculos-api/veiculos-api/internal/admins"
	"github.com/veiculos-api/veiculos-api/internal/auth"
	"github.com/veiculos-api/veiculos-api/internal/vehicles"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthHandler     *auth.Handler
	AdminsHandler   *admins.Handler
	VehiclesHandler *vehicles.Handler
}

// NewRouter constructs the chi.Router with the service defaults. The
// route-to-policy mapping is fixed here and in the handlers: login and the
// welcome document are public, administrators are Adm-only, and vehicles
// require authentication with Adm-only deletion.
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

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"API de Veículos","docs":"/healthz"}`))
	})

	params.AuthHandler.MountRoutes(r)
	params.AdminsHandler.MountRoutes(r)
	params.VehiclesHandler.MountRoutes(r)

	return r
}
