package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kryva/kryva/internal/middleware"
	"github.com/kryva/kryva/internal/observability"
)

// RouterConfig carries the settings the router's middleware needs.
type RouterConfig struct {
	ServiceName    string
	JWTSecret      []byte
	JWTIssuer      string
	JWTAudience    string
	RequestTimeout time.Duration
	RateLimit      int
	RateWindow     time.Duration
}

func NewRouter(prefH *PreferencesHandler, ready map[string]observability.Check, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(observability.MetricsMiddleware(cfg.ServiceName))
	r.Use(middleware.Recovery())
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/health/live", observability.HealthLiveHandler)
	r.Get("/health/ready", observability.HealthReadyHandler(ready))

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.RateLimit > 0 {
			api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
		}

		api.Get("/catalog", Catalog)
		api.Get("/legal/terms", Terms)

		api.Group(func(p chi.Router) {
			p.Use(middleware.JWT(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience))

			prefPath := "/preferences"
			p.Get(prefPath, prefH.Get)
			p.Put(prefPath, prefH.Update)

			p.Post("/account/delete", prefH.Delete)
		})
	})

	return otelhttp.NewHandler(r, cfg.ServiceName)
}
