package catalog

import (
	"context"

	"github.com/dudashop/inventory-backend/pkg/db"
	"github.com/dudashop/inventory-backend/pkg/db/models"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository manages the product name list backing the grid's selection
// column.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every catalog name in insertion order.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.CatalogProduct{}).
		Order("id ASC").
		Pluck("product_name", &names).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "listing catalog")
	}
	return names, nil
}

// Add inserts the name if absent. The unique constraint carries the
// idempotence, so concurrent writers cannot race a check-then-insert.
func (r *Repository) Add(ctx context.Context, name string) error {
	entry := models.CatalogProduct{ProductName: name}
	err := r.db.WithContext(ctx).Create(&entry).Error
	if err == nil || db.IsUniqueViolation(err, "") {
		return nil
	}
	return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "adding catalog entry")
}

// Remove deletes the name; removing an absent name is a no-op. Ledger rows
// referencing the name keep it as plain text.
func (r *Repository) Remove(ctx context.Context, name string) error {
	if err := r.db.WithContext(ctx).
		Where("product_name = ?", name).
		Delete(&models.CatalogProduct{}).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "removing catalog entry")
	}
	return nil
}
