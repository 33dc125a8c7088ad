package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dudashop/inventory-backend/api/controllers"
	reportcontrollers "github.com/dudashop/inventory-backend/api/controllers/reports"
	"github.com/dudashop/inventory-backend/api/handlers"
	"github.com/dudashop/inventory-backend/api/middleware"
	"github.com/dudashop/inventory-backend/internal/catalog"
	"github.com/dudashop/inventory-backend/internal/ledger"
	"github.com/dudashop/inventory-backend/internal/reports"
	"github.com/dudashop/inventory-backend/pkg/config"
	"github.com/dudashop/inventory-backend/pkg/db"
	"github.com/dudashop/inventory-backend/pkg/logger"
	"github.com/dudashop/inventory-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	ledgerService ledger.Service,
	catalogService catalog.Service,
	reportService reports.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Get("/healthz", handlers.Healthz(cfg, logg))
	r.Get("/readyz", handlers.Readyz(cfg, logg, dbP))

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.InventorySnapshot(ledgerService, logg))
			r.Post("/reconcile", controllers.InventoryReconcile(ledgerService, logg))
			r.Get("/status-counts", controllers.InventoryStatusCounts(ledgerService, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, logg))
			r.Post("/", controllers.CatalogAdd(catalogService, logg))
			r.Delete("/{productName}", controllers.CatalogRemove(catalogService, logg))
		})

		r.Get("/reports", reportcontrollers.Materialize(reportService, logg))
	})

	return r
}
