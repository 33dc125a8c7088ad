package enums

import "fmt"

// StockLocation says where a ledger row's goods sit: still an open order or
// already in the shop's inventory.
type StockLocation string

const (
	StockLocationNewOrder  StockLocation = "new_order"
	StockLocationInventory StockLocation = "inventory"
)

var validStockLocations = []StockLocation{
	StockLocationNewOrder,
	StockLocationInventory,
}

// String implements fmt.Stringer.
func (s StockLocation) String() string {
	return string(s)
}

// IsValid reports whether the location is recognized.
func (s StockLocation) IsValid() bool {
	for _, candidate := range validStockLocations {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockLocation converts a raw string into a StockLocation.
func ParseStockLocation(value string) (StockLocation, error) {
	for _, candidate := range validStockLocations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock location %q", value)
}
