package controllers

import (
	"context"
	"net/http"

	"github.com/greenlyfe/greenlyfe-backend/api/responses"
	"github.com/greenlyfe/greenlyfe-backend/pkg/config"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
)

type pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Greenlyfe-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks optional dependencies. Redis is best effort; the
// storefront keeps serving without it, so a failed ping only degrades the
// report instead of failing it.
func HealthReady(cfg *config.Config, redisClient pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Greenlyfe-Env", cfg.App.Env)

		report := map[string]string{"status": "ready"}
		if redisClient != nil {
			report["redis"] = "ok"
			if err := redisClient.Ping(r.Context()); err != nil {
				report["redis"] = "unreachable"
				if logg != nil {
					logg.Warn(r.Context(), "readiness: redis ping failed: "+err.Error())
				}
			}
		}
		responses.WriteSuccess(w, report)
	}
}
