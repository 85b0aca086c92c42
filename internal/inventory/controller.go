package inventory

import (
	"strconv"

	"shopadmin/internal/list"
)

// ControllerOptions tune the inventory list controller.
type ControllerOptions struct {
	PageSize   int
	GuardStale bool
}

// NewController builds the inventory list controller. An empty result is
// an error on every page and the previously shown rows stay up; the
// search matches product name (or ID), warehouse name and SKU, and the
// status filter compares against the derived stock status.
func NewController(svc *Service, opts ControllerOptions) *list.Controller[Item] {
	size := opts.PageSize
	if size <= 0 {
		size = 100
	}
	return list.New(list.Config[Item]{
		Name:     "inventory",
		PageSize: size,
		Fetch:    svc.List,
		ID:       func(i Item) string { return strconv.FormatInt(i.ID, 10) },
		SearchFields: func(i Item) []string {
			return []string{i.DisplayName(), i.WarehouseName(), i.SKU}
		},
		Status:       func(i Item) string { return i.StockStatus() },
		EmptyPolicy:  list.EmptyErrorAlways,
		EmptyMessage: "No inventory items found. The API returned an empty result.",
		GuardStale:   opts.GuardStale,
	})
}
