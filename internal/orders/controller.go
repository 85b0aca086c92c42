package orders

import (
	"shopadmin/internal/list"
)

// ControllerOptions tune the order list controller.
type ControllerOptions struct {
	PageSize   int
	GuardStale bool
}

// NewController builds the order list controller. Orders cannot be
// deleted, only transitioned; an empty page is neutral, an unrecognized
// envelope is an error. The status filter compares against DisplayStatus,
// and the sales report's date-range filter hangs off CreatedAt.
func NewController(svc *Service, opts ControllerOptions) *list.Controller[Order] {
	size := opts.PageSize
	if size <= 0 {
		size = 100
	}
	return list.New(list.Config[Order]{
		Name:     "orders",
		PageSize: size,
		Fetch:    svc.List,
		ID:       func(o Order) string { return o.ID },
		SearchFields: func(o Order) []string {
			return []string{o.ID, o.UserID, o.ShippingAddress}
		},
		Status:              func(o Order) string { return DisplayStatus(o.Status) },
		CreatedAt:           func(o Order) string { return o.CreatedAt },
		EmptyPolicy:         list.EmptyNeutral,
		UnrecognizedIsError: true,
		GuardStale:          opts.GuardStale,
	})
}
