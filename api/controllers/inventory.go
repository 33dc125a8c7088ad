package controllers

import (
	"net/http"

	"github.com/dudashop/inventory-backend/api/responses"
	"github.com/dudashop/inventory-backend/api/validators"
	"github.com/dudashop/inventory-backend/internal/ledger"
	"github.com/dudashop/inventory-backend/pkg/logger"
)

func InventorySnapshot(service ledger.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		from, err := validators.ParseQueryDate(r, "from")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		to, err := validators.ParseQueryDate(r, "to")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		rows, err := service.Snapshot(ctx, from, to)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"rows": rows})
	}
}

// InventoryReconcile applies a grid edit batch against the current snapshot.
// Positions in the payload index into the id-ordered listing the client
// fetched; concurrent sessions are last-write-wins.
func InventoryReconcile(service ledger.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var edits ledger.EditSet
		if err := validators.DecodeJSONBody(r, &edits); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snapshot, err := service.Snapshot(ctx, nil, nil)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := service.Reconcile(ctx, snapshot, edits); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithFields(ctx, map[string]any{
				"updated": len(edits.Edited),
				"added":   len(edits.Added),
				"deleted": len(edits.Deleted),
			}), "inventory.reconciled")
		}

		responses.WriteSuccess(w, map[string]int{
			"updated": len(edits.Edited),
			"added":   len(edits.Added),
			"deleted": len(edits.Deleted),
		})
	}
}

func InventoryStatusCounts(service ledger.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		counts, err := service.StatusCounts(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"counts": counts})
	}
}
