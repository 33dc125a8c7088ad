package ledger

import (
	"context"

	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository manages persistence for ledger rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// EnsureSchema creates the ledger and catalog tables when absent. Safe to
// call repeatedly.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	err := r.db.WithContext(ctx).AutoMigrate(&models.LedgerRow{}, &models.CatalogProduct{})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "ensuring ledger schema")
	}
	return nil
}

// LoadAll reads the full ledger snapshot in id order. Zero rows is an empty
// slice, not an error.
func (r *Repository) LoadAll(ctx context.Context) ([]models.LedgerRow, error) {
	rows := []models.LedgerRow{}
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "loading ledger snapshot")
	}
	return rows, nil
}

// Insert writes a new row; the store assigns the id.
func (r *Repository) Insert(ctx context.Context, row *models.LedgerRow) error {
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "inserting ledger row")
	}
	return nil
}

// Update overwrites the full field set of the row keyed by its id and
// reports how many rows matched. Zero means the row vanished under a stale
// snapshot; the caller decides how to surface that.
func (r *Repository) Update(ctx context.Context, row *models.LedgerRow) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.LedgerRow{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"product_name":   row.ProductName,
			"sale_price":     row.SalePrice,
			"purchase_price": row.PurchasePrice,
			"foreign_price":  row.ForeignPrice,
			"description":    row.Description,
			"stock_location": row.StockLocation,
			"order_status":   row.OrderStatus,
			"customer_name":  row.CustomerName,
			"photo_link":     row.PhotoLink,
			"date_created":   row.DateCreated,
		})
	if result.Error != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, result.Error, "updating ledger row")
	}
	return result.RowsAffected, nil
}

// Delete removes the row with the given id. Deleting an id that is already
// gone is a no-op, not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.LedgerRow{}).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "deleting ledger row")
	}
	return nil
}

// CountByStatus tallies rows per order status.
func (r *Repository) CountByStatus(ctx context.Context) (map[enums.OrderStatus]int64, error) {
	type statusCount struct {
		OrderStatus *enums.OrderStatus
		Total       int64
	}
	var counts []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.LedgerRow{}).
		Select("order_status, COUNT(*) AS total").
		Group("order_status").
		Find(&counts).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "counting rows by status")
	}

	out := make(map[enums.OrderStatus]int64, len(counts))
	for _, c := range counts {
		status := enums.OrderStatusPending
		if c.OrderStatus != nil {
			status = *c.OrderStatus
		}
		out[status] += c.Total
	}
	return out, nil
}
