package reports

import (
	"net/http"

	"github.com/dudashop/inventory-backend/api/responses"
	reportsvc "github.com/dudashop/inventory-backend/internal/reports"
	"github.com/dudashop/inventory-backend/pkg/logger"
)

func Materialize(service reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, dateRange, err := resolveReportParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithReportKind(ctx, kind.String())
		}

		report, err := service.Materialize(ctx, kind, dateRange)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
