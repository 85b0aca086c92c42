// Package dashboard aggregates order and product data into the home-page
// summary and the sales / inventory reports. Each section fetches its own
// copy of the data independently; there is no shared cache and no
// consistency guarantee between sections.
package dashboard

import (
	"context"
	"time"

	"shopadmin/internal/catalog"
	"shopadmin/internal/envelope"
	"shopadmin/internal/orders"
)

// Fixed sales target the progress gauge is measured against (VND).
const defaultSalesTarget = 1_000_000_000

// metricsFetchSize is deliberately oversized: the summary wants the whole
// order history and the order service caps nothing.
const metricsFetchSize = 1000

// MonthBucket is one month's aggregated sales.
type MonthBucket struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// DayBucket is one weekday's aggregated sales over the trailing week.
type DayBucket struct {
	Day    string  `json:"day"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// Summary is the home-page metrics block.
type Summary struct {
	TotalSales        float64       `json:"totalSales"`
	TotalOrders       int           `json:"totalOrders"`
	TotalCustomers    int           `json:"totalCustomers"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	TargetSales       float64       `json:"targetSales"`
	PercentAchieved   float64       `json:"percentAchieved"`
	MonthlySales      []MonthBucket `json:"monthlySales"`
	WeeklySales       []DayBucket   `json:"weeklySales"`
}

// TopProduct is a product with its synthetic sales ranking. The backend
// has no top-seller endpoint, so ranking is positional.
type TopProduct struct {
	catalog.Product
	SalesCount  int     `json:"salesCount"`
	SalesAmount float64 `json:"salesAmount"`
}

// Service builds dashboard aggregates from the order and product services.
type Service struct {
	orders  *orders.Service
	catalog *catalog.Service
	now     func() time.Time
}

func NewService(orderSvc *orders.Service, catalogSvc *catalog.Service) *Service {
	return &Service{orders: orderSvc, catalog: catalogSvc, now: time.Now}
}

// Summary fetches the order history and computes the metrics block.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	body, err := s.orders.List(ctx, 1, metricsFetchSize)
	if err != nil {
		return nil, err
	}
	res := envelope.Normalize[orders.Order](body, envelope.PageInfo{Page: 1, PageSize: metricsFetchSize})
	return BuildSummary(res.Items, s.now()), nil
}

// BuildSummary aggregates a slice of orders into the summary block.
func BuildSummary(all []orders.Order, now time.Time) *Summary {
	sum := &Summary{
		TargetSales:  defaultSalesTarget,
		MonthlySales: emptyMonths(),
		WeeklySales:  emptyDays(),
	}

	customers := make(map[string]struct{})
	weekAgo := now.AddDate(0, 0, -7)

	for _, o := range all {
		sum.TotalSales += o.TotalAmount
		sum.TotalOrders++
		customers[o.UserID] = struct{}{}

		created, err := time.Parse(time.RFC3339, o.CreatedAt)
		if err != nil {
			continue
		}
		mb := &sum.MonthlySales[int(created.Month())-1]
		mb.Sales += o.TotalAmount
		mb.Orders++

		if !created.Before(weekAgo) {
			db := &sum.WeeklySales[int(created.Weekday())]
			db.Sales += o.TotalAmount
			db.Orders++
		}
	}

	sum.TotalCustomers = len(customers)
	if sum.TotalOrders > 0 {
		sum.AverageOrderValue = sum.TotalSales / float64(sum.TotalOrders)
	}
	sum.PercentAchieved = sum.TotalSales / defaultSalesTarget * 100
	return sum
}

// TopProducts fetches the first few products and attaches the synthetic
// descending sales figures used by the top-sellers widget.
func (s *Service) TopProducts(ctx context.Context, n int) ([]TopProduct, error) {
	if n <= 0 {
		n = 5
	}
	body, err := s.catalog.List(ctx, 1, n)
	if err != nil {
		return nil, err
	}
	res := envelope.Normalize[catalog.Product](body, envelope.PageInfo{Page: 1, PageSize: n})

	top := make([]TopProduct, 0, len(res.Items))
	for i, p := range res.Items {
		count := 100 - i*15
		top = append(top, TopProduct{
			Product:     p,
			SalesCount:  count,
			SalesAmount: p.EffectivePrice() * float64(count),
		})
	}
	return top, nil
}

// RecentOrders fetches the order list and returns the first n entries.
func (s *Service) RecentOrders(ctx context.Context, n int) ([]orders.Order, error) {
	if n <= 0 {
		n = 5
	}
	body, err := s.orders.List(ctx, 1, metricsFetchSize)
	if err != nil {
		return nil, err
	}
	res := envelope.Normalize[orders.Order](body, envelope.PageInfo{Page: 1, PageSize: metricsFetchSize})
	if len(res.Items) > n {
		return res.Items[:n], nil
	}
	return res.Items, nil
}

func emptyMonths() []MonthBucket {
	names := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	buckets := make([]MonthBucket, len(names))
	for i, name := range names {
		buckets[i] = MonthBucket{Month: name}
	}
	return buckets
}

func emptyDays() []DayBucket {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	buckets := make([]DayBucket, len(names))
	for i, name := range names {
		buckets[i] = DayBucket{Day: name}
	}
	return buckets
}
