package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopadmin/internal/apiclient"
	"shopadmin/internal/catalog"
	"shopadmin/internal/dashboard"
	"shopadmin/internal/identity"
	"shopadmin/internal/inventory"
	"shopadmin/internal/orders"
)

// TestGatewayIntegration wires the full service stack against a fake
// backend and drives each resource controller through a load cycle.
func TestGatewayIntegration(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/product-service/product", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"content": [
				{"id": "p1", "name": "Oxford Shirt", "basePrice": 350000, "status": "active"},
				{"id": "p2", "name": "Chino Pants", "basePrice": 420000, "status": "low_stock"}
			],
			"pageable": {"pageNumber": 0, "pageSize": 100},
			"totalPages": 1,
			"totalElements": 2
		}`))
	})
	mux.HandleFunc("/order-service/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"id": "o1", "userId": "u1", "totalAmount": 770000, "status": "PENDING", "createdAt": "2024-06-14T10:00:00Z"},
			{"id": "o2", "userId": "u2", "totalAmount": 350000, "status": "DELIVERED", "createdAt": "2024-06-13T09:00:00Z"}
		]}`))
	})
	mux.HandleFunc("/inventory-service/inventory", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [
			{"id": 1, "productId": "p1", "availableQuantity": 40, "reorderLevel": 10},
			{"id": 2, "productId": "p2", "availableQuantity": 3, "reorderLevel": 10}
		]}`))
	})
	mux.HandleFunc("/identity-service/identity/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer integration-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"code": 200, "result": [
			{"id": "u1", "username": "alice", "email": "alice@shop.test", "points": 1200}
		]}`))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	client := apiclient.New(backend.URL, 0)
	ctx := context.Background()

	products := catalog.NewController(catalog.NewService(client, "/product-service"), catalog.ControllerOptions{PageSize: 100})
	products.Load(ctx)
	if msg := products.Err(); msg != "" {
		t.Fatalf("product load failed: %s", msg)
	}
	if got := len(products.Items()); got != 2 {
		t.Fatalf("expected 2 products, got %d", got)
	}
	products.SetStatusFilter("Low Stock")
	if got := len(products.Filtered()); got != 1 {
		t.Fatalf("expected 1 low-stock product, got %d", got)
	}

	orderCtrl := orders.NewController(orders.NewService(client, "/order-service"), orders.ControllerOptions{PageSize: 100})
	orderCtrl.Load(ctx)
	if msg := orderCtrl.Err(); msg != "" {
		t.Fatalf("order load failed: %s", msg)
	}
	orderCtrl.SetStatusFilter("Processing")
	filtered := orderCtrl.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "o1" {
		t.Fatalf("expected only the pending order, got %v", filtered)
	}

	stock := inventory.NewController(inventory.NewService(client, "/inventory-service"), inventory.ControllerOptions{PageSize: 100})
	stock.Load(ctx)
	if msg := stock.Err(); msg != "" {
		t.Fatalf("inventory load failed: %s", msg)
	}

	customers := identity.NewController(
		identity.NewService(client, "/identity-service", identity.StaticToken("integration-token")),
		identity.ControllerOptions{PageSize: 10},
	)
	customers.Load(ctx)
	if msg := customers.Err(); msg != "" {
		t.Fatalf("customer load failed: %s", msg)
	}
	users := customers.Items()
	if len(users) != 1 || users[0].MembershipLevel() != "Gold" {
		t.Fatalf("expected one gold-tier customer, got %v", users)
	}

	orderSvc := orders.NewService(client, "/order-service")
	summary, err := dashboard.NewService(orderSvc, catalog.NewService(client, "/product-service")).Summary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalSales != 1120000 {
		t.Fatalf("expected total sales 1120000, got %f", summary.TotalSales)
	}
	if summary.TotalCustomers != 2 {
		t.Fatalf("expected 2 distinct customers, got %d", summary.TotalCustomers)
	}
}

// TestControllerSurvivesBackendRestart checks that a failed reload keeps
// the previously loaded rows and that a retry recovers.
func TestControllerSurvivesBackendRestart(t *testing.T) {
	up := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !up {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data": [{"id": "o1", "userId": "u1", "totalAmount": 10}]}`))
	}))
	defer srv.Close()

	ctrl := orders.NewController(orders.NewService(apiclient.New(srv.URL, 0), ""), orders.ControllerOptions{PageSize: 100})
	ctx := context.Background()

	ctrl.Load(ctx)
	if len(ctrl.Items()) != 1 {
		t.Fatalf("expected 1 order after first load, got %d", len(ctrl.Items()))
	}

	up = false
	ctrl.Load(ctx)
	if ctrl.Err() == "" {
		t.Fatal("expected an error message after the backend went down")
	}
	if len(ctrl.Items()) != 1 {
		t.Fatal("stale rows must remain visible while errored")
	}

	up = true
	ctrl.Load(ctx)
	if ctrl.Err() != "" {
		t.Fatalf("expected recovery, still errored: %s", ctrl.Err())
	}
}
