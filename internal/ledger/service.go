package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/dudashop/inventory-backend/pkg/db"
	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/types"
	"gorm.io/gorm"
)

// Service exposes the ledger snapshot and grid reconciliation operations.
type Service interface {
	Snapshot(ctx context.Context, from, to *types.Date) ([]models.LedgerRow, error)
	Reconcile(ctx context.Context, snapshot []models.LedgerRow, edits EditSet) error
	StatusCounts(ctx context.Context) (map[enums.OrderStatus]int64, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService wires a ledger service with the provided repository and client.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ledger repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// Snapshot loads the current ledger, optionally filtered to rows whose
// creation date falls inside [from, to], both ends inclusive.
func (s *service) Snapshot(ctx context.Context, from, to *types.Date) ([]models.LedgerRow, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidRange, "start date is after end date").
			WithDetails(map[string]any{"from": from.String(), "to": to.String()})
	}

	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if from == nil && to == nil {
		return rows, nil
	}

	filtered := make([]models.LedgerRow, 0, len(rows))
	for _, row := range rows {
		if row.DateCreated.IsZero() {
			continue
		}
		if from != nil && row.DateCreated.Before(*from) {
			continue
		}
		if to != nil && row.DateCreated.After(*to) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered, nil
}

// Reconcile applies the edit set against the store as one transaction:
// updates first, then inserts, then deletes. Positions index into the
// caller's snapshot and are resolved to stable row ids at this boundary;
// everything past it operates by id. The caller must reload the snapshot
// afterwards to observe the result.
func (s *service) Reconcile(ctx context.Context, snapshot []models.LedgerRow, edits EditSet) error {
	if edits.IsEmpty() {
		return nil
	}
	if err := resolvePositions(snapshot, edits); err != nil {
		return err
	}

	return s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		positions := make([]int, 0, len(edits.Edited))
		for pos := range edits.Edited {
			positions = append(positions, pos)
		}
		sort.Ints(positions)

		for _, pos := range positions {
			delta := edits.Edited[pos]
			if err := delta.validate(); err != nil {
				return err
			}

			merged := snapshot[pos]
			delta.applyTo(&merged)
			if merged.DateCreated.IsZero() {
				return pkgerrors.New(pkgerrors.CodeValidation, "date_created is required on edited rows").
					WithDetails(map[string]any{"position": pos, "id": merged.ID})
			}

			affected, err := repo.Update(ctx, &merged)
			if err != nil {
				return err
			}
			if affected == 0 {
				return pkgerrors.New(pkgerrors.CodeRowVanished, "row was removed since the snapshot was taken").
					WithDetails(map[string]any{"position": pos, "id": merged.ID})
			}
		}

		for i, payload := range edits.Added {
			if err := payload.validate(); err != nil {
				if typed := pkgerrors.As(err); typed != nil {
					return typed.WithDetails(map[string]any{"added_index": i})
				}
				return err
			}
			row := payload.toRow()
			if err := repo.Insert(ctx, &row); err != nil {
				return err
			}
		}

		deleted := append([]int(nil), edits.Deleted...)
		sort.Ints(deleted)
		for _, pos := range deleted {
			if err := repo.Delete(ctx, snapshot[pos].ID); err != nil {
				return err
			}
		}

		return nil
	})
}

// resolvePositions rejects positions that do not index into the snapshot
// before any write happens. A position past the snapshot means the caller's
// view is stale.
func resolvePositions(snapshot []models.LedgerRow, edits EditSet) error {
	for pos := range edits.Edited {
		if pos < 0 || pos >= len(snapshot) {
			return pkgerrors.New(pkgerrors.CodeRowVanished, "edited position does not resolve against the snapshot").
				WithDetails(map[string]any{"position": pos, "snapshot_len": len(snapshot)})
		}
	}
	for _, pos := range edits.Deleted {
		if pos < 0 || pos >= len(snapshot) {
			return pkgerrors.New(pkgerrors.CodeRowVanished, "deleted position does not resolve against the snapshot").
				WithDetails(map[string]any{"position": pos, "snapshot_len": len(snapshot)})
		}
	}
	return nil
}

// StatusCounts tallies ledger rows per order status, zero-filling statuses
// with no rows.
func (s *service) StatusCounts(ctx context.Context) (map[enums.OrderStatus]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, status := range enums.AllOrderStatuses() {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts, nil
}
