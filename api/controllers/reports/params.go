package reports

import (
	"net/http"
	"strings"

	reportsvc "github.com/dudashop/inventory-backend/internal/reports"
	"github.com/dudashop/inventory-backend/pkg/enums"
	pkgerrors "github.com/dudashop/inventory-backend/pkg/errors"
	"github.com/dudashop/inventory-backend/pkg/types"
)

func resolveReportParams(r *http.Request) (enums.ReportKind, *reportsvc.DateRange, error) {
	query := r.URL.Query()

	kind, err := enums.ParseReportKind(strings.TrimSpace(query.Get("kind")))
	if err != nil {
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report kind").
			WithDetails(map[string]any{"field": "kind"})
	}

	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" && to == "" {
		return kind, nil, nil
	}
	if from == "" || to == "" {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "from and to must be provided together")
	}

	start, err := types.ParseDate(from)
	if err != nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid from date").
			WithDetails(map[string]any{"field": "from", "value": from})
	}
	end, err := types.ParseDate(to)
	if err != nil {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid to date").
			WithDetails(map[string]any{"field": "to", "value": to})
	}

	return kind, &reportsvc.DateRange{Start: start, End: end}, nil
}
