package handlers

import (
	"net/http"

	"github.com/dudashop/inventory-backend/api/responses"
	"github.com/dudashop/inventory-backend/pkg/config"
	"github.com/dudashop/inventory-backend/pkg/db"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/logger"
)

func Healthz(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logg.WithFields(r.Context(), map[string]any{
			"env":  cfg.App.Env,
			"path": r.URL.Path,
		})
		logg.Info(ctx, "health.check")

		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Readyz pings the row store so load balancers stop routing to an instance
// whose database is gone.
func Readyz(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if dbP == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeStoreUnavailable, "store not wired"))
			return
		}
		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "store ping failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
