package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenlyfe/greenlyfe-backend/api/controllers"
	"github.com/greenlyfe/greenlyfe-backend/api/middleware"
	"github.com/greenlyfe/greenlyfe-backend/internal/advice"
	"github.com/greenlyfe/greenlyfe-backend/internal/cart"
	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	checkoutsvc "github.com/greenlyfe/greenlyfe-backend/internal/checkout"
	"github.com/greenlyfe/greenlyfe-backend/pkg/config"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
	"github.com/greenlyfe/greenlyfe-backend/pkg/metrics"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
	"github.com/greenlyfe/greenlyfe-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs. Optional members may be
// nil: a nil redis client disables rate limiting and a nil registry
// disables the metrics endpoint.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Catalog     *catalog.Catalog
	BadgeRules  []catalog.BadgeRule
	Formatter   *money.Formatter
	CartService cart.Service
	Checkout    checkoutsvc.Service
	Advice      advice.Provider
	Redis       *redis.Client
	Registry    *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	var httpMetrics *metrics.HTTPMetrics
	if deps.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(deps.Registry)
		r.Use(middleware.Metrics(httpMetrics))
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/healthz", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, readinessPinger(deps.Redis), logg))
	})

	advicePolicy := middleware.NewRateLimitPolicy(
		"advice",
		cfg.AdviceRateLimit.Window,
		cfg.AdviceRateLimit.IPLimit,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Cart.CookieName, cfg.Cart.SessionTTL, cfg.App.IsProd(), logg))

		r.Get("/products", controllers.ListProducts(deps.Catalog, deps.BadgeRules, deps.Formatter, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.CartService, deps.Formatter, logg))
			r.Put("/items", controllers.SetCartItem(deps.CartService, deps.Formatter, logg))
			r.Patch("/items/{productID}", controllers.UpdateCartItem(deps.CartService, deps.Formatter, logg))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(deps.CartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(deps.CartService, deps.Checkout, deps.Formatter, logg))

		r.With(middleware.RateLimit(advicePolicy, rateLimitStore(deps.Redis), logg)).
			Post("/advice", controllers.Advice(deps.Advice, logg))
	})

	return r
}

// readinessPinger keeps a nil *redis.Client from turning into a non-nil
// interface value.
func readinessPinger(client *redis.Client) interface{ Ping(context.Context) error } {
	if client == nil {
		return nil
	}
	return client
}

func rateLimitStore(client *redis.Client) interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
} {
	if client == nil {
		return nil
	}
	return client
}
