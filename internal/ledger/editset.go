package ledger

import (
	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// EditSet describes the pending grid changes against one snapshot: partial
// field deltas keyed by row position, new row payloads, and positions to
// remove. It is built fresh per interaction, consumed exactly once by
// Reconcile, and never persisted.
type EditSet struct {
	Edited  map[int]RowDelta `json:"edited"`
	Added   []NewRow         `json:"added"`
	Deleted []int            `json:"deleted"`
}

// IsEmpty reports whether the edit set carries no changes.
func (e EditSet) IsEmpty() bool {
	return len(e.Edited) == 0 && len(e.Added) == 0 && len(e.Deleted) == 0
}

// RowDelta is a partial update. A nil field means "retain the prior value";
// the grid only sends the cells the user touched.
type RowDelta struct {
	ProductName   *string              `json:"product_name,omitempty"`
	SalePrice     *decimal.Decimal     `json:"sale_price,omitempty"`
	PurchasePrice *decimal.Decimal     `json:"purchase_price,omitempty"`
	ForeignPrice  *decimal.Decimal     `json:"foreign_price,omitempty"`
	Description   *string              `json:"description,omitempty"`
	StockLocation *enums.StockLocation `json:"stock_location,omitempty"`
	OrderStatus   *enums.OrderStatus   `json:"order_status,omitempty"`
	CustomerName  *string              `json:"customer_name,omitempty"`
	PhotoLink     *string              `json:"photo_link,omitempty"`
	DateCreated   *types.Date          `json:"date_created,omitempty"`
}

func (d RowDelta) validate() error {
	if d.StockLocation != nil && !d.StockLocation.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid stock location").
			WithDetails(map[string]any{"stock_location": string(*d.StockLocation)})
	}
	if d.OrderStatus != nil && !d.OrderStatus.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"order_status": string(*d.OrderStatus)})
	}
	return nil
}

// applyTo merges the delta onto a row's full field set. Set fields override,
// nil fields keep the last-known value.
func (d RowDelta) applyTo(row *models.LedgerRow) {
	if d.ProductName != nil {
		row.ProductName = d.ProductName
	}
	if d.SalePrice != nil {
		row.SalePrice = decimal.NullDecimal{Decimal: *d.SalePrice, Valid: true}
	}
	if d.PurchasePrice != nil {
		row.PurchasePrice = decimal.NullDecimal{Decimal: *d.PurchasePrice, Valid: true}
	}
	if d.ForeignPrice != nil {
		row.ForeignPrice = decimal.NullDecimal{Decimal: *d.ForeignPrice, Valid: true}
	}
	if d.Description != nil {
		row.Description = d.Description
	}
	if d.StockLocation != nil {
		row.StockLocation = d.StockLocation
	}
	if d.OrderStatus != nil {
		row.OrderStatus = d.OrderStatus
	}
	if d.CustomerName != nil {
		row.CustomerName = d.CustomerName
	}
	if d.PhotoLink != nil {
		row.PhotoLink = d.PhotoLink
	}
	if d.DateCreated != nil {
		row.DateCreated = *d.DateCreated
	}
}

// NewRow is a new-row payload. The id is never caller-supplied; fields left
// nil default to null placeholders on insert.
type NewRow struct {
	ProductName   *string              `json:"product_name,omitempty"`
	SalePrice     *decimal.Decimal     `json:"sale_price,omitempty"`
	PurchasePrice *decimal.Decimal     `json:"purchase_price,omitempty"`
	ForeignPrice  *decimal.Decimal     `json:"foreign_price,omitempty"`
	Description   *string              `json:"description,omitempty"`
	StockLocation *enums.StockLocation `json:"stock_location,omitempty"`
	OrderStatus   *enums.OrderStatus   `json:"order_status,omitempty"`
	CustomerName  *string              `json:"customer_name,omitempty"`
	PhotoLink     *string              `json:"photo_link,omitempty"`
	DateCreated   *types.Date          `json:"date_created,omitempty"`
}

func (n NewRow) validate() error {
	if n.DateCreated == nil || n.DateCreated.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "date_created is required on new rows")
	}
	if n.StockLocation != nil && !n.StockLocation.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid stock location").
			WithDetails(map[string]any{"stock_location": string(*n.StockLocation)})
	}
	if n.OrderStatus != nil && !n.OrderStatus.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"order_status": string(*n.OrderStatus)})
	}
	return nil
}

func (n NewRow) toRow() models.LedgerRow {
	row := models.LedgerRow{
		ProductName:   n.ProductName,
		Description:   n.Description,
		StockLocation: n.StockLocation,
		OrderStatus:   n.OrderStatus,
		CustomerName:  n.CustomerName,
		PhotoLink:     n.PhotoLink,
	}
	if n.SalePrice != nil {
		row.SalePrice = decimal.NullDecimal{Decimal: *n.SalePrice, Valid: true}
	}
	if n.PurchasePrice != nil {
		row.PurchasePrice = decimal.NullDecimal{Decimal: *n.PurchasePrice, Valid: true}
	}
	if n.ForeignPrice != nil {
		row.ForeignPrice = decimal.NullDecimal{Decimal: *n.ForeignPrice, Valid: true}
	}
	if n.DateCreated != nil {
		row.DateCreated = *n.DateCreated
	}
	return row
}
