package reports

import (
	"sort"

	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// DateRange is an inclusive calendar interval.
type DateRange struct {
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
}

// Validate rejects ranges whose start falls after their end.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return pkgerrors.New(pkgerrors.CodeInvalidRange, "start date is after end date").
			WithDetails(map[string]any{"start": r.Start.String(), "end": r.End.String()})
	}
	return nil
}

// Contains reports whether the date lies inside the range, both ends
// inclusive.
func (r DateRange) Contains(d types.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Bucket is one derived report group. It is recomputed on every request
// from the current ledger snapshot and never cached across mutations.
type Bucket struct {
	Key        string          `json:"key"`
	RevenueSum decimal.Decimal `json:"revenue_sum"`
	CostSum    decimal.Decimal `json:"cost_sum"`
	Difference decimal.Decimal `json:"difference"`
	Count      int             `json:"count"`
}

// AggregateParams selects the grouping dimension and row filters.
type AggregateParams struct {
	BucketBy enums.BucketBy
	// StatusFilter keeps only rows with one of these statuses; nil means no
	// status filtering.
	StatusFilter []enums.OrderStatus
	// Range keeps only rows dated inside it; nil means all dates.
	Range *DateRange
}

// Aggregate buckets ledger rows and sums their amounts. Day and month
// buckets come back in ascending key order; product buckets in first-seen
// order, which keeps output deterministic for identical input. An empty
// filtered set yields an empty slice, not an error. NULL prices count as
// zero.
func Aggregate(rows []models.LedgerRow, params AggregateParams) ([]Bucket, error) {
	if !params.BucketBy.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid bucket dimension")
	}
	if params.Range != nil {
		if err := params.Range.Validate(); err != nil {
			return nil, err
		}
	}

	var statuses map[enums.OrderStatus]bool
	if params.StatusFilter != nil {
		statuses = make(map[enums.OrderStatus]bool, len(params.StatusFilter))
		for _, s := range params.StatusFilter {
			statuses[s] = true
		}
	}

	index := map[string]int{}
	buckets := []Bucket{}

	for _, row := range rows {
		if statuses != nil && !statuses[row.Status()] {
			continue
		}
		if params.Range != nil {
			if row.DateCreated.IsZero() || !params.Range.Contains(row.DateCreated) {
				continue
			}
		}

		key, ok := bucketKey(row, params.BucketBy)
		if !ok {
			continue
		}

		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}

		b := &buckets[i]
		if row.SalePrice.Valid {
			b.RevenueSum = b.RevenueSum.Add(row.SalePrice.Decimal)
		}
		if row.PurchasePrice.Valid {
			b.CostSum = b.CostSum.Add(row.PurchasePrice.Decimal)
		}
		b.Count++
	}

	for i := range buckets {
		buckets[i].Difference = buckets[i].RevenueSum.Sub(buckets[i].CostSum)
	}

	if params.BucketBy == enums.BucketByDay || params.BucketBy == enums.BucketByMonth {
		// ISO keys sort lexicographically in chronological order.
		sort.Slice(buckets, func(i, j int) bool {
			return buckets[i].Key < buckets[j].Key
		})
	}

	return buckets, nil
}

func bucketKey(row models.LedgerRow, by enums.BucketBy) (string, bool) {
	switch by {
	case enums.BucketByDay:
		if row.DateCreated.IsZero() {
			return "", false
		}
		return row.DateCreated.String(), true
	case enums.BucketByMonth:
		if row.DateCreated.IsZero() {
			return "", false
		}
		return row.DateCreated.YearMonth(), true
	case enums.BucketByProduct:
		if row.ProductName == nil || *row.ProductName == "" {
			return "", false
		}
		return *row.ProductName, true
	}
	return "", false
}
