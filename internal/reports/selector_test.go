package reports

import (
	"context"
	"testing"
	"time"

	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/types"
	"github.com/shopspring/decimal"
)

type stubLoader struct {
	rows   []models.LedgerRow
	err    error
	called bool
}

func (s *stubLoader) LoadAll(ctx context.Context) ([]models.LedgerRow, error) {
	s.called = true
	return s.rows, s.err
}

func newReportService(t *testing.T, rows []models.LedgerRow) (Service, *stubLoader) {
	t.Helper()
	loader := &stubLoader{rows: rows}
	svc, err := NewService(loader, enums.CurrencyALL)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, loader
}

func TestMaterializeDailyProfitCountsOnlySettledRows(t *testing.T) {
	pending := enums.OrderStatusPending
	rows := []models.LedgerRow{
		settledRow("booster", types.NewDate(2024, time.January, 5), "100", "60"),
		{
			SalePrice:   decimal.NullDecimal{Decimal: decimal.RequireFromString("999"), Valid: true},
			OrderStatus: &pending,
			DateCreated: types.NewDate(2024, time.January, 5),
		},
	}
	svc, _ := newReportService(t, rows)

	report, err := svc.Materialize(context.Background(), enums.ReportKindDailyProfit, nil)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if report.Kind != enums.ReportKindDailyProfit {
		t.Errorf("kind = %q", report.Kind)
	}
	if report.Currency != enums.CurrencyALL {
		t.Errorf("currency = %q", report.Currency)
	}
	if len(report.Buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(report.Buckets))
	}
	if !report.Buckets[0].Difference.Equal(decimal.RequireFromString("40")) {
		t.Errorf("difference = %s, want 40", report.Buckets[0].Difference)
	}
}

func TestMaterializeMonthlyProfitBucketsByMonth(t *testing.T) {
	rows := []models.LedgerRow{
		settledRow("booster", types.NewDate(2024, time.February, 2), "10", "4"),
		settledRow("booster", types.NewDate(2024, time.January, 5), "100", "60"),
	}
	svc, _ := newReportService(t, rows)

	report, err := svc.Materialize(context.Background(), enums.ReportKindMonthlyProfit, nil)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(report.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(report.Buckets))
	}
	if report.Buckets[0].Key != "2024-01" || report.Buckets[1].Key != "2024-02" {
		t.Fatalf("months out of order: %q, %q", report.Buckets[0].Key, report.Buckets[1].Key)
	}
}

func TestMaterializeByProductIgnoresStatus(t *testing.T) {
	cancelled := enums.OrderStatusCancelled
	name := "sleeves"
	rows := []models.LedgerRow{
		settledRow(name, types.NewDate(2024, time.March, 1), "10", "4"),
		{
			ProductName: &name,
			OrderStatus: &cancelled,
			DateCreated: types.NewDate(2024, time.March, 2),
		},
	}
	svc, _ := newReportService(t, rows)

	report, err := svc.Materialize(context.Background(), enums.ReportKindByProduct, nil)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(report.Buckets) != 1 || report.Buckets[0].Count != 2 {
		t.Fatalf("expected every status counted, got %#v", report.Buckets)
	}
}

func TestMaterializeBestSellerRanksByCountOnly(t *testing.T) {
	d := types.NewDate(2024, time.April, 1)
	rows := []models.LedgerRow{
		settledRow("alpha box", d, "500", "300"),
		settledRow("zebra sleeves", d, "1", "1"),
		settledRow("zebra sleeves", d, "1", "1"),
	}
	svc, _ := newReportService(t, rows)

	report, err := svc.Materialize(context.Background(), enums.ReportKindBestSeller, nil)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(report.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(report.Buckets))
	}
	if report.Buckets[0].Key != "zebra sleeves" || report.Buckets[0].Count != 2 {
		t.Fatalf("expected zebra sleeves first, got %#v", report.Buckets[0])
	}
	for _, b := range report.Buckets {
		if !b.RevenueSum.IsZero() || !b.CostSum.IsZero() || !b.Difference.IsZero() {
			t.Errorf("bucket %q carries money fields: %#v", b.Key, b)
		}
	}
}

func TestMaterializeRejectsRangeBeforeLoading(t *testing.T) {
	svc, loader := newReportService(t, nil)

	_, err := svc.Materialize(context.Background(), enums.ReportKindDailyProfit, &DateRange{
		Start: types.NewDate(2024, time.May, 10),
		End:   types.NewDate(2024, time.May, 1),
	})
	if !pkgerrors.HasCode(err, pkgerrors.CodeInvalidRange) {
		t.Fatalf("expected invalid range error, got %v", err)
	}
	if loader.called {
		t.Fatal("rows were loaded for a rejected range")
	}
}

func TestMaterializeRejectsUnknownKind(t *testing.T) {
	svc, loader := newReportService(t, nil)

	_, err := svc.Materialize(context.Background(), enums.ReportKind("weekly"), nil)
	if !pkgerrors.HasCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if loader.called {
		t.Fatal("rows were loaded for an unknown kind")
	}
}
