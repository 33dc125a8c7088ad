package models

import (
	"time"

	"github.com/dudashop/inventory-backend/pkg/enums"
	"github.com/dudashop/inventory-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// LedgerRow is one inventory/order entry. The id is store-assigned on insert
// and immutable for the row's lifetime. ProductName is a soft reference into
// the product catalog: interfaces carry the name string, never a foreign
// key, so names orphaned by catalog deletions stay valid text.
type LedgerRow struct {
	ID            int64                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductName   *string              `gorm:"column:product_name" json:"product_name"`
	SalePrice     decimal.NullDecimal  `gorm:"column:sale_price;type:numeric(14,2)" json:"sale_price"`
	PurchasePrice decimal.NullDecimal  `gorm:"column:purchase_price;type:numeric(14,2)" json:"purchase_price"`
	ForeignPrice  decimal.NullDecimal  `gorm:"column:foreign_price;type:numeric(14,2)" json:"foreign_price"`
	Description   *string              `gorm:"column:description" json:"description"`
	StockLocation *enums.StockLocation `gorm:"column:stock_location" json:"stock_location"`
	OrderStatus   *enums.OrderStatus   `gorm:"column:order_status" json:"order_status"`
	CustomerName  *string              `gorm:"column:customer_name" json:"customer_name"`
	PhotoLink     *string              `gorm:"column:photo_link" json:"photo_link"`
	DateCreated   types.Date           `gorm:"column:date_created" json:"date_created"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName keeps the legacy table name the grid UI was built against.
func (LedgerRow) TableName() string {
	return "inventory"
}

// Status returns the row's order status, pending when unset.
func (r LedgerRow) Status() enums.OrderStatus {
	if r.OrderStatus == nil {
		return enums.OrderStatusPending
	}
	return *r.OrderStatus
}
