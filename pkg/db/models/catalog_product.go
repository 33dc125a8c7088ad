package models

import "time"

// CatalogProduct is a unique product name offered in the grid's selection
// list. Removing one cascades to no ledger row.
type CatalogProduct struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"column:product_name;not null;uniqueIndex:uq_products_product_name" json:"product_name"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

// TableName keeps the legacy table name.
func (CatalogProduct) TableName() string {
	return "products"
}
