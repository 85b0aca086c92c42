// Package inventory adapts the inventory service: stock levels per
// warehouse and the quantity adjustment operation.
package inventory

// Warehouse is a stock location.
type Warehouse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

// Item is one product's stock record in one warehouse. ProductName, SKU
// and Category are enrichment fields the inventory service may or may not
// populate.
type Item struct {
	ID                int64      `json:"id"`
	ProductID         string     `json:"productId"`
	Quantity          int        `json:"quantity"`
	ReservedQuantity  int        `json:"reservedQuantity"`
	ReorderLevel      int        `json:"reorderLevel"`
	Warehouse         *Warehouse `json:"warehouse,omitempty"`
	AvailableQuantity int        `json:"availableQuantity"`
	ProductName       string     `json:"productName,omitempty"`
	SKU               string     `json:"sku,omitempty"`
	Category          string     `json:"category,omitempty"`
}

// StockStatus derives the display status from the quantity fields.
func (i Item) StockStatus() string {
	switch {
	case i.AvailableQuantity <= 0:
		return "Out of Stock"
	case i.AvailableQuantity <= i.ReorderLevel:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// DisplayName prefers the enriched product name over the bare product ID.
func (i Item) DisplayName() string {
	if i.ProductName != "" {
		return i.ProductName
	}
	return i.ProductID
}

// WarehouseName is empty-safe.
func (i Item) WarehouseName() string {
	if i.Warehouse == nil {
		return ""
	}
	return i.Warehouse.Name
}
