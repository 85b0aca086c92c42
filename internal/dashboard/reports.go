package dashboard

import (
	"context"

	"shopadmin/internal/envelope"
	"shopadmin/internal/inventory"
	"shopadmin/internal/orders"
)

// SalesSummary heads the sales report.
type SalesSummary struct {
	TotalSales        float64 `json:"totalSales"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	PendingOrders     int     `json:"pendingOrders"`
}

// BuildSalesSummary aggregates one page of orders the way the sales
// report header does: pending counts PENDING and PROCESSING only.
func BuildSalesSummary(page []orders.Order) SalesSummary {
	var sum SalesSummary
	for _, o := range page {
		sum.TotalSales += o.TotalAmount
		sum.TotalOrders++
		if o.IsPending() {
			sum.PendingOrders++
		}
	}
	if sum.TotalOrders > 0 {
		sum.AverageOrderValue = sum.TotalSales / float64(sum.TotalOrders)
	}
	return sum
}

// StockSummary heads the inventory report.
type StockSummary struct {
	TotalItems     int `json:"totalItems"`
	TotalAvailable int `json:"totalAvailable"`
	InStock        int `json:"inStock"`
	LowStock       int `json:"lowStock"`
	OutOfStock     int `json:"outOfStock"`
}

// BuildStockSummary counts stock records by derived status.
func BuildStockSummary(page []inventory.Item) StockSummary {
	var sum StockSummary
	for _, item := range page {
		sum.TotalItems++
		sum.TotalAvailable += item.AvailableQuantity
		switch item.StockStatus() {
		case "In Stock":
			sum.InStock++
		case "Low Stock":
			sum.LowStock++
		default:
			sum.OutOfStock++
		}
	}
	return sum
}

// ReportService bundles the extra fetches the report pages need.
type ReportService struct {
	orders    *orders.Service
	inventory *inventory.Service
}

func NewReportService(orderSvc *orders.Service, inventorySvc *inventory.Service) *ReportService {
	return &ReportService{orders: orderSvc, inventory: inventorySvc}
}

// SalesReport fetches one page of orders and its summary.
func (s *ReportService) SalesReport(ctx context.Context, page, size int) ([]orders.Order, SalesSummary, error) {
	body, err := s.orders.List(ctx, page, size)
	if err != nil {
		return nil, SalesSummary{}, err
	}
	res := envelope.Normalize[orders.Order](body, envelope.PageInfo{Page: page, PageSize: size})
	return res.Items, BuildSalesSummary(res.Items), nil
}

// InventoryReport fetches one page of stock records and its summary.
func (s *ReportService) InventoryReport(ctx context.Context, page, size int) ([]inventory.Item, StockSummary, error) {
	body, err := s.inventory.List(ctx, page, size)
	if err != nil {
		return nil, StockSummary{}, err
	}
	res := envelope.Normalize[inventory.Item](body, envelope.PageInfo{Page: page, PageSize: size})
	return res.Items, BuildStockSummary(res.Items), nil
}
