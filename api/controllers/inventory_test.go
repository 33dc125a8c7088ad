package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dudashop/inventory-backend/internal/ledger"
	"github.com/dudashop/inventory-backend/pkg/db/models"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/logger"
	"github.com/dudashop/inventory-backend/pkg/types"
)

type testLedgerService struct {
	rows         []models.LedgerRow
	counts       map[enums.OrderStatus]int64
	snapshotErr  error
	reconcileErr error

	lastFrom, lastTo *types.Date
	lastEdits        ledger.EditSet
	reconcileCalls   int
}

func (s *testLedgerService) Snapshot(ctx context.Context, from, to *types.Date) ([]models.LedgerRow, error) {
	s.lastFrom, s.lastTo = from, to
	if s.snapshotErr != nil {
		return nil, s.snapshotErr
	}
	return s.rows, nil
}

func (s *testLedgerService) Reconcile(ctx context.Context, snapshot []models.LedgerRow, edits ledger.EditSet) error {
	s.reconcileCalls++
	s.lastEdits = edits
	return s.reconcileErr
}

func (s *testLedgerService) StatusCounts(ctx context.Context) (map[enums.OrderStatus]int64, error) {
	return s.counts, nil
}

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test"})
}

func TestInventorySnapshotParsesRange(t *testing.T) {
	stub := &testLedgerService{rows: []models.LedgerRow{}}
	handler := InventorySnapshot(stub, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/inventory?from=2024-01-01&to=2024-01-31", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if stub.lastFrom == nil || stub.lastFrom.String() != "2024-01-01" {
		t.Errorf("from = %v", stub.lastFrom)
	}
	if stub.lastTo == nil || stub.lastTo.String() != "2024-01-31" {
		t.Errorf("to = %v", stub.lastTo)
	}
}

func TestInventorySnapshotRejectsMalformedDate(t *testing.T) {
	stub := &testLedgerService{}
	handler := InventorySnapshot(stub, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/inventory?from=01-02-2024", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestInventoryReconcileReportsBatchSize(t *testing.T) {
	stub := &testLedgerService{}
	handler := InventoryReconcile(stub, newTestLogger())

	date := types.NewDate(2024, time.June, 1)
	body := `{"edited":{},"added":[{"product_name":"booster","date_created":"` + date.String() + `"}],"deleted":[0,2]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/inventory/reconcile", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if stub.reconcileCalls != 1 {
		t.Fatalf("reconcile called %d times", stub.reconcileCalls)
	}
	if len(stub.lastEdits.Added) != 1 || len(stub.lastEdits.Deleted) != 2 {
		t.Fatalf("edits not passed through: %#v", stub.lastEdits)
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	data := envelope.Data.(map[string]any)
	if data["added"] != float64(1) || data["deleted"] != float64(2) {
		t.Fatalf("unexpected summary %v", data)
	}
}

func TestInventoryReconcileMapsVanishedRowTo409(t *testing.T) {
	stub := &testLedgerService{
		reconcileErr: pkgerrors.New(pkgerrors.CodeRowVanished, "row no longer exists").
			WithDetails(map[string]any{"position": 4}),
	}
	handler := InventoryReconcile(stub, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/inventory/reconcile", strings.NewReader(`{"deleted":[4]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if body.Error.Code != string(pkgerrors.CodeRowVanished) {
		t.Fatalf("unexpected code %s", body.Error.Code)
	}
}

func TestInventoryReconcileRejectsMalformedBody(t *testing.T) {
	stub := &testLedgerService{}
	handler := InventoryReconcile(stub, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/inventory/reconcile", strings.NewReader(`{"edited":`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if stub.reconcileCalls != 0 {
		t.Fatal("reconcile should not run on a malformed body")
	}
}

func TestInventoryStatusCounts(t *testing.T) {
	stub := &testLedgerService{
		counts: map[enums.OrderStatus]int64{
			enums.OrderStatusPending: 2,
			enums.OrderStatusSettled: 5,
		},
	}
	handler := InventoryStatusCounts(stub, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/inventory/status-counts", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}

	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	counts := envelope.Data.(map[string]any)["counts"].(map[string]any)
	if counts["settled"] != float64(5) {
		t.Fatalf("unexpected counts %v", counts)
	}
}
