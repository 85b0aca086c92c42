package httpx

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shopadmin/internal/catalog"
	"shopadmin/internal/envelope"
	"shopadmin/internal/identity"
	"shopadmin/internal/inventory"
	"shopadmin/internal/list"
	"shopadmin/internal/orders"
)

// listResponse is the canonical list payload served to the frontend.
// Error travels alongside the items because a failed refresh keeps the
// previously loaded rows visible beneath the error banner.
type listResponse struct {
	Items    any               `json:"items"`
	PageInfo envelope.PageInfo `json:"pageInfo"`
	Error    string            `json:"error,omitempty"`
}

// serveList runs one controller through a single load cycle and writes the
// filtered page. Controllers are per-request; every call re-fetches.
func serveList[T any](w http.ResponseWriter, r *http.Request, ctrl *list.Controller[T]) {
	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ctrl.SetPage(n)
		}
	}
	if v := q.Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ctrl.SetPageSize(n)
		}
	}
	ctrl.SetSearch(q.Get("q"))
	ctrl.SetStatusFilter(q.Get("status"))
	ctrl.SetDateRange(q.Get("range"))

	ctrl.Load(r.Context())

	writeJSON(w, http.StatusOK, listResponse{
		Items:    ctrl.Filtered(),
		PageInfo: ctrl.PageInfo(),
		Error:    ctrl.Err(),
	})
}

func listProducts(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := catalog.NewController(deps.Catalog, catalog.ControllerOptions{
			PageSize:   deps.Config.Pages.Products,
			GuardStale: deps.Config.GuardStale,
		})
		serveList(w, r, ctrl)
	}
}

func deleteProduct(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := deps.Catalog.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	}
}

func listCategories(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := intParam(q.Get("page"), 1)
		size := intParam(q.Get("size"), 20)
		cats, pageInfo, err := deps.Catalog.ListCategories(r.Context(), page, size)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Items: cats, PageInfo: pageInfo})
	}
}

func listCustomers(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := identity.NewController(deps.Identity, identity.ControllerOptions{
			PageSize:   deps.Config.Pages.Customers,
			GuardStale: deps.Config.GuardStale,
		})
		serveList(w, r, ctrl)
	}
}

func deleteCustomer(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := deps.Identity.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
	}
}

func listOrders(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := orders.NewController(deps.Orders, orders.ControllerOptions{
			PageSize:   deps.Config.Pages.Orders,
			GuardStale: deps.Config.GuardStale,
		})
		serveList(w, r, ctrl)
	}
}

func patchOrderStatus(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var body struct {
			Status string `json:"status"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Status == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status is required"})
			return
		}
		if err := deps.Orders.SetStatus(r.Context(), id, body.Status); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": body.Status})
	}
}

func patchPaymentStatus(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var body struct {
			PaymentStatus string `json:"paymentStatus"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.PaymentStatus == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "paymentStatus is required"})
			return
		}
		if err := deps.Orders.SetPaymentStatus(r.Context(), id, body.PaymentStatus); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id, "paymentStatus": body.PaymentStatus})
	}
}

func listInventory(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctrl := inventory.NewController(deps.Inventory, inventory.ControllerOptions{
			PageSize:   deps.Config.Pages.Inventory,
			GuardStale: deps.Config.GuardStale,
		})
		serveList(w, r, ctrl)
	}
}

func patchInventoryQuantity(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid inventory id"})
			return
		}
		var body struct {
			Quantity *int `json:"quantity"`
		}
		if !decodeBody(w, r, &body) {
			return
		}
		if body.Quantity == nil || *body.Quantity < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "quantity must be a non-negative number"})
			return
		}
		if err := deps.Inventory.SetQuantity(r.Context(), id, *body.Quantity); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "quantity": *body.Quantity})
	}
}

func dashboardSummary(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := deps.Dashboard.Summary(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

func dashboardTopProducts(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := intParam(r.URL.Query().Get("n"), 5)
		top, err := deps.Dashboard.TopProducts(r.Context(), n)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": top})
	}
}

func dashboardRecentOrders(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := intParam(r.URL.Query().Get("n"), 5)
		recent, err := deps.Dashboard.RecentOrders(r.Context(), n)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": recent})
	}
}

func salesReport(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := intParam(q.Get("page"), 1)
		size := intParam(q.Get("size"), deps.Config.Pages.Orders)
		items, summary, err := deps.Reports.SalesReport(r.Context(), page, size)
		if err != nil {
			writeError(w, err)
			return
		}
		filtered := list.Apply(items, list.FilterState{
			SearchTerm: q.Get("q"),
			Status:     q.Get("status"),
			DateRange:  q.Get("range"),
		}, list.Matcher[orders.Order]{
			Fields: func(o orders.Order) []string {
				return []string{o.ID, o.UserID, o.ShippingAddress}
			},
			Status:    func(o orders.Order) string { return orders.DisplayStatus(o.Status) },
			CreatedAt: func(o orders.Order) string { return o.CreatedAt },
		})
		writeJSON(w, http.StatusOK, map[string]any{"items": filtered, "summary": summary})
	}
}

func inventoryReport(deps RouterDependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := intParam(q.Get("page"), 1)
		size := intParam(q.Get("size"), deps.Config.Pages.Inventory)
		items, summary, err := deps.Reports.InventoryReport(r.Context(), page, size)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items, "summary": summary})
	}
}

func intParam(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
