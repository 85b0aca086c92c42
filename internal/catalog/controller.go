package catalog

import (
	"shopadmin/internal/list"
)

// ControllerOptions tune the product list controller.
type ControllerOptions struct {
	PageSize   int
	GuardStale bool
}

// NewController builds the product list controller. Products error on a
// truly empty first page and step back when paging past the end; the
// search matches the product name and its primary category name.
func NewController(svc *Service, opts ControllerOptions) *list.Controller[Product] {
	size := opts.PageSize
	if size <= 0 {
		size = 100
	}
	return list.New(list.Config[Product]{
		Name:     "products",
		PageSize: size,
		Fetch:    svc.List,
		Delete:   svc.Delete,
		ID:       func(p Product) string { return p.ID },
		SearchFields: func(p Product) []string {
			fields := []string{p.Name}
			if p.Category != nil {
				fields = append(fields, p.Category.Name)
			}
			return fields
		},
		Status:        func(p Product) string { return p.StockLabel() },
		CreatedAt:     func(p Product) string { return p.CreatedAt },
		EmptyPolicy:   list.EmptyErrorFirstPage,
		EmptyMessage:  "No products found. The API returned an empty result.",
		NoMoreMessage: "No more products available on this page.",
		GuardStale:    opts.GuardStale,
	})
}
