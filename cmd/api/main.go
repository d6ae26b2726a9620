package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/greenlyfe/greenlyfe-backend/api/routes"
	"github.com/greenlyfe/greenlyfe-backend/internal/advice"
	"github.com/greenlyfe/greenlyfe-backend/internal/cart"
	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	checkoutsvc "github.com/greenlyfe/greenlyfe-backend/internal/checkout"
	"github.com/greenlyfe/greenlyfe-backend/pkg/config"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
	"github.com/greenlyfe/greenlyfe-backend/pkg/money"
	"github.com/greenlyfe/greenlyfe-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	products := catalog.DefaultSeed()
	if cfg.Catalog.SeedPath != "" {
		products, err = catalog.LoadSeedFile(cfg.Catalog.SeedPath)
		if err != nil {
			logg.Error(context.Background(), "failed to load catalog seed", err)
			os.Exit(1)
		}
	}
	cat, err := catalog.New(products, cfg.Store.Locale)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	formatter := money.NewFormatter(cfg.Store.Locale, cfg.Store.CurrencySymbol)

	cartStore := cart.NewStore(cfg.Cart.SessionTTL)
	cartStore.StartJanitor(context.Background(), cfg.Cart.SweepInterval)
	cartService, err := cart.NewService(cartStore, cat)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cfg.Store.Name, cfg.Store.WhatsAppNumber, formatter)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	var adviceProvider advice.Provider = advice.Disabled{}
	if cfg.OpenAI.APIKey != "" {
		adviceProvider, err = advice.NewOpenAIProvider(advice.OpenAIOptions{
			APIKey:    cfg.OpenAI.APIKey,
			BaseURL:   cfg.OpenAI.BaseURL,
			Model:     cfg.OpenAI.Model,
			StoreName: cfg.Store.Name,
			Logger:    logg,
		}, cat)
		if err != nil {
			logg.Error(context.Background(), "failed to create advice provider", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "advice provider disabled, no api key configured")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"products": cat.Len(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			Catalog:     cat,
			BadgeRules:  catalog.DefaultBadgeRules(),
			Formatter:   formatter,
			CartService: cartService,
			Checkout:    checkoutService,
			Advice:      adviceProvider,
			Redis:       redisClient,
			Registry:    registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
