package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/types"
)

// ParseQueryDate reads an optional YYYY-MM-DD query parameter. A missing or
// blank value yields a nil date.
func ParseQueryDate(r *http.Request, key string) (*types.Date, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	date, err := types.ParseDate(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a YYYY-MM-DD date").
			WithDetails(map[string]any{"field": key, "value": raw})
	}
	return &date, nil
}
