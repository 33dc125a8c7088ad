package enums

import "fmt"

// ReportKind names the materialized reports the selector can produce.
type ReportKind string

const (
	ReportKindDailyProfit   ReportKind = "daily_profit"
	ReportKindMonthlyProfit ReportKind = "monthly_profit"
	ReportKindByProduct     ReportKind = "by_product"
	ReportKindBestSeller    ReportKind = "best_seller"
)

var validReportKinds = []ReportKind{
	ReportKindDailyProfit,
	ReportKindMonthlyProfit,
	ReportKindByProduct,
	ReportKindBestSeller,
}

// String implements fmt.Stringer.
func (k ReportKind) String() string {
	return string(k)
}

// IsValid reports whether the kind is recognized.
func (k ReportKind) IsValid() bool {
	for _, candidate := range validReportKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseReportKind converts a raw string into a ReportKind.
func ParseReportKind(value string) (ReportKind, error) {
	for _, candidate := range validReportKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report kind %q", value)
}

// BucketBy is the grouping dimension the aggregator applies.
type BucketBy string

const (
	BucketByDay     BucketBy = "day"
	BucketByMonth   BucketBy = "month"
	BucketByProduct BucketBy = "product"
)

// IsValid reports whether the dimension is recognized.
func (b BucketBy) IsValid() bool {
	switch b {
	case BucketByDay, BucketByMonth, BucketByProduct:
		return true
	}
	return false
}
