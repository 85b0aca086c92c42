package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/apiclient"
	"shopadmin/internal/catalog"
	"shopadmin/internal/inventory"
	"shopadmin/internal/orders"
)

func TestBuildSummary(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	all := []orders.Order{
		{UserID: "u1", TotalAmount: 100, CreatedAt: "2024-06-14T10:00:00Z"},
		{UserID: "u1", TotalAmount: 200, CreatedAt: "2024-06-10T10:00:00Z"},
		{UserID: "u2", TotalAmount: 300, CreatedAt: "2024-03-01T10:00:00Z"},
		{UserID: "u3", TotalAmount: 50, CreatedAt: "not a timestamp"},
	}

	sum := BuildSummary(all, now)

	assert.Equal(t, 650.0, sum.TotalSales)
	assert.Equal(t, 4, sum.TotalOrders)
	assert.Equal(t, 3, sum.TotalCustomers)
	assert.InDelta(t, 162.5, sum.AverageOrderValue, 0.001)

	require.Len(t, sum.MonthlySales, 12)
	jun := sum.MonthlySales[5]
	assert.Equal(t, "Jun", jun.Month)
	assert.Equal(t, 300.0, jun.Sales)
	assert.Equal(t, 2, jun.Orders)
	mar := sum.MonthlySales[2]
	assert.Equal(t, 300.0, mar.Sales)
	assert.Equal(t, 1, mar.Orders)

	// Only the two June orders fall inside the trailing week; the 14th was
	// a Friday, the 10th a Monday.
	require.Len(t, sum.WeeklySales, 7)
	assert.Equal(t, 100.0, sum.WeeklySales[5].Sales)
	assert.Equal(t, 200.0, sum.WeeklySales[1].Sales)
	assert.Equal(t, 0.0, sum.WeeklySales[0].Sales)
}

func TestBuildSummaryEmpty(t *testing.T) {
	sum := BuildSummary(nil, time.Now())

	assert.Zero(t, sum.TotalSales)
	assert.Zero(t, sum.TotalOrders)
	assert.Zero(t, sum.AverageOrderValue)
	assert.Len(t, sum.MonthlySales, 12)
	assert.Len(t, sum.WeeklySales, 7)
}

func TestBuildSalesSummary(t *testing.T) {
	sum := BuildSalesSummary([]orders.Order{
		{TotalAmount: 100, Status: "PENDING"},
		{TotalAmount: 200, Status: "PROCESSING"},
		{TotalAmount: 300, Status: "DELIVERED"},
	})

	assert.Equal(t, 600.0, sum.TotalSales)
	assert.Equal(t, 3, sum.TotalOrders)
	assert.Equal(t, 200.0, sum.AverageOrderValue)
	assert.Equal(t, 2, sum.PendingOrders)
}

func TestBuildStockSummary(t *testing.T) {
	sum := BuildStockSummary([]inventory.Item{
		{AvailableQuantity: 10, ReorderLevel: 5},
		{AvailableQuantity: 3, ReorderLevel: 5},
		{AvailableQuantity: 0, ReorderLevel: 5},
	})

	assert.Equal(t, 3, sum.TotalItems)
	assert.Equal(t, 13, sum.TotalAvailable)
	assert.Equal(t, 1, sum.InStock)
	assert.Equal(t, 1, sum.LowStock)
	assert.Equal(t, 1, sum.OutOfStock)
}

func TestTopProductsSyntheticRanking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [
			{"id": "p1", "name": "First", "basePrice": 10},
			{"id": "p2", "name": "Second", "basePrice": 20}
		]}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, 0)
	svc := NewService(orders.NewService(client, ""), catalog.NewService(client, ""))

	top, err := svc.TopProducts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, 100, top[0].SalesCount)
	assert.Equal(t, 1000.0, top[0].SalesAmount)
	assert.Equal(t, 85, top[1].SalesCount)
	assert.Equal(t, 1700.0, top[1].SalesAmount)
}

func TestRecentOrdersTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"id": "o1"}, {"id": "o2"}, {"id": "o3"}, {"id": "o4"}
		]}`))
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, 0)
	svc := NewService(orders.NewService(client, ""), catalog.NewService(client, ""))

	recent, err := svc.RecentOrders(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "o1", recent[0].ID)
}
