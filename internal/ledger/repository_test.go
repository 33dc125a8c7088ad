package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	"github.com/dudashop/inventory-backend/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return conn
}

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo := NewRepository(newTestDB(t))
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return repo
}

func strPtr(s string) *string { return &s }

func statusPtr(s enums.OrderStatus) *enums.OrderStatus { return &s }

func locationPtr(l enums.StockLocation) *enums.StockLocation { return &l }

func money(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestInsertLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := models.LedgerRow{
		ProductName:   strPtr("Fustan"),
		SalePrice:     money("100.00"),
		PurchasePrice: money("60.00"),
		ForeignPrice:  money("0.85"),
		CustomerName:  strPtr("Arta"),
		StockLocation: locationPtr(enums.StockLocationNewOrder),
		OrderStatus:   statusPtr(enums.OrderStatusSettled),
		DateCreated:   types.NewDate(2024, time.January, 5),
	}
	require.NoError(t, repo.Insert(ctx, &row))
	require.NotZero(t, row.ID, "store must assign an id")

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	require.Equal(t, row.ID, got.ID)
	require.Equal(t, "Fustan", *got.ProductName)
	require.True(t, got.SalePrice.Valid)
	require.True(t, got.SalePrice.Decimal.Equal(decimal.RequireFromString("100.00")))
	require.True(t, got.PurchasePrice.Decimal.Equal(decimal.RequireFromString("60.00")))
	require.Equal(t, enums.OrderStatusSettled, *got.OrderStatus)
	require.True(t, got.DateCreated.Equal(types.NewDate(2024, time.January, 5)))

	// Omitted optional fields come back as null placeholders.
	require.Nil(t, got.Description)
	require.Nil(t, got.PhotoLink)
	require.True(t, got.ForeignPrice.Valid, "explicitly set foreign price survives")
}

func TestInsertNeverTrustsCallerID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := models.LedgerRow{ID: 999, DateCreated: types.NewDate(2024, time.March, 1)}
	require.NoError(t, repo.Insert(ctx, &row))
	require.NotEqual(t, int64(999), row.ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := models.LedgerRow{DateCreated: types.NewDate(2024, time.April, 2)}
	require.NoError(t, repo.Insert(ctx, &row))

	require.NoError(t, repo.Delete(ctx, row.ID))
	require.NoError(t, repo.Delete(ctx, row.ID), "second delete is a no-op")

	rows, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestUpdateReportsVanishedRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := models.LedgerRow{DateCreated: types.NewDate(2024, time.April, 2)}
	require.NoError(t, repo.Insert(ctx, &row))

	row.CustomerName = strPtr("Blerta")
	affected, err := repo.Update(ctx, &row)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	require.NoError(t, repo.Delete(ctx, row.ID))
	affected, err = repo.Update(ctx, &row)
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestCountByStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, status := range []enums.OrderStatus{
		enums.OrderStatusSettled,
		enums.OrderStatusSettled,
		enums.OrderStatusPending,
	} {
		row := models.LedgerRow{
			OrderStatus: statusPtr(status),
			DateCreated: types.NewDate(2024, time.May, 1),
		}
		require.NoError(t, repo.Insert(ctx, &row))
	}
	// A legacy row with no status counts as pending.
	legacy := models.LedgerRow{DateCreated: types.NewDate(2024, time.May, 2)}
	require.NoError(t, repo.Insert(ctx, &legacy))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, counts[enums.OrderStatusSettled])
	require.EqualValues(t, 2, counts[enums.OrderStatusPending])
}
