// Package httpx re-publishes the normalized backend data as a clean JSON
// API for the dashboard frontend: every list endpoint returns the
// canonical {items, pageInfo} shape regardless of which envelope the
// upstream service used.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"shopadmin/internal/catalog"
	"shopadmin/internal/config"
	"shopadmin/internal/dashboard"
	"shopadmin/internal/identity"
	"shopadmin/internal/inventory"
	"shopadmin/internal/orders"
)

// RouterDependencies holds the services the handlers work with.
type RouterDependencies struct {
	Config    config.Cfg
	Catalog   *catalog.Service
	Identity  *identity.Service
	Orders    *orders.Service
	Inventory *inventory.Service
	Dashboard *dashboard.Service
	Reports   *dashboard.ReportService
}

// NewRouter wires the gateway's routes.
func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", listProducts(deps))
		r.Delete("/products/{id}", deleteProduct(deps))
		r.Get("/categories", listCategories(deps))

		r.Get("/customers", listCustomers(deps))
		r.Delete("/customers/{id}", deleteCustomer(deps))

		r.Get("/orders", listOrders(deps))
		r.Patch("/orders/{id}/status", patchOrderStatus(deps))
		r.Patch("/orders/{id}/payment-status", patchPaymentStatus(deps))

		r.Get("/inventory", listInventory(deps))
		r.Patch("/inventory/{id}/quantity", patchInventoryQuantity(deps))

		r.Get("/dashboard/summary", dashboardSummary(deps))
		r.Get("/dashboard/top-products", dashboardTopProducts(deps))
		r.Get("/dashboard/recent-orders", dashboardRecentOrders(deps))
		r.Get("/reports/sales", salesReport(deps))
		r.Get("/reports/inventory", inventoryReport(deps))
	})

	return r
}
