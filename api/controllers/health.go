package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/nmoralesv/shopdesk-backend/api/responses"
	"github.com/nmoralesv/shopdesk-backend/pkg/config"
	"github.com/nmoralesv/shopdesk-backend/pkg/db"
	pkgerrors "github.com/nmoralesv/shopdesk-backend/pkg/errors"
	"github.com/nmoralesv/shopdesk-backend/pkg/logger"
	"github.com/nmoralesv/shopdesk-backend/pkg/redis"
	"github.com/nmoralesv/shopdesk-backend/pkg/storage/gcs"
)

const readyCheckTimeout = 5 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopDesk-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every hard dependency; any failure reports the
// service as not ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger, gcsP gcs.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ShopDesk-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		checks := []struct {
			name   string
			pinger interface {
				Ping(context.Context) error
			}
		}{
			{"database", dbP},
			{"redis", redisP},
			{"gcs", gcsP},
		}

		status := map[string]string{}
		for _, check := range checks {
			if check.pinger == nil {
				continue
			}
			if err := check.pinger.Ping(ctx); err != nil {
				status[check.name] = "unavailable"
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.name+" unavailable").
						WithDetails(status))
				return
			}
			status[check.name] = "ok"
		}

		status["status"] = "ready"
		responses.WriteSuccess(w, status)
	}
}
