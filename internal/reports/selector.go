package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// SnapshotLoader supplies the current ledger snapshot. Each report call
// loads once; there is no point-in-time consistency guarantee beyond that.
type SnapshotLoader interface {
	LoadAll(ctx context.Context) ([]models.LedgerRow, error)
}

// Report is a materialized report ready for table or chart rendering: one
// series per numeric bucket field.
type Report struct {
	Kind     enums.ReportKind `json:"kind"`
	Currency enums.Currency   `json:"currency"`
	Buckets  []Bucket         `json:"buckets"`
}

// Service chooses the aggregation view implied by a report kind and
// materializes it. No state is kept between calls.
type Service interface {
	Materialize(ctx context.Context, kind enums.ReportKind, dateRange *DateRange) (*Report, error)
}

type service struct {
	snapshots SnapshotLoader
	currency  enums.Currency
}

// NewService wires a report service over the provided snapshot source.
func NewService(snapshots SnapshotLoader, currency enums.Currency) (Service, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot loader required")
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("invalid report currency %q", currency)
	}
	return &service{snapshots: snapshots, currency: currency}, nil
}

func (s *service) Materialize(ctx context.Context, kind enums.ReportKind, dateRange *DateRange) (*Report, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid report kind").
			WithDetails(map[string]any{"kind": string(kind)})
	}
	// Reject a reversed range before any row is loaded.
	if dateRange != nil {
		if err := dateRange.Validate(); err != nil {
			return nil, err
		}
	}

	rows, err := s.snapshots.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	params := paramsForKind(kind)
	params.Range = dateRange

	buckets, err := Aggregate(rows, params)
	if err != nil {
		return nil, err
	}

	if kind == enums.ReportKindBestSeller {
		// Count-only view, ranked by popularity; ties keep first-seen order.
		for i := range buckets {
			buckets[i].RevenueSum = decimal.Zero
			buckets[i].CostSum = decimal.Zero
			buckets[i].Difference = decimal.Zero
		}
		sort.SliceStable(buckets, func(i, j int) bool {
			return buckets[i].Count > buckets[j].Count
		})
	}

	return &Report{Kind: kind, Currency: s.currency, Buckets: buckets}, nil
}

// paramsForKind maps each report kind to its bucket dimension and status
// filter. Financial reports count only settled orders; product views count
// every row regardless of status.
func paramsForKind(kind enums.ReportKind) AggregateParams {
	switch kind {
	case enums.ReportKindDailyProfit:
		return AggregateParams{
			BucketBy:     enums.BucketByDay,
			StatusFilter: []enums.OrderStatus{enums.OrderStatusSettled},
		}
	case enums.ReportKindMonthlyProfit:
		return AggregateParams{
			BucketBy:     enums.BucketByMonth,
			StatusFilter: []enums.OrderStatus{enums.OrderStatusSettled},
		}
	default:
		return AggregateParams{BucketBy: enums.BucketByProduct}
	}
}
