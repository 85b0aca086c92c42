// Package catalog adapts the product service: product CRUD, the category
// tree, and the product list controller.
package catalog

import "strings"

// Category is a product category node.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SkuCode  string `json:"skuCode,omitempty"`
	Slug     string `json:"slug,omitempty"`
	ParentID *int64 `json:"parentId"`
}

// CategoryRef is the abbreviated category embedded in product records.
type CategoryRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Product as returned by the product service. Price is legacy; BasePrice is
// the authoritative amount.
type Product struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Price        float64       `json:"price,omitempty"`
	BasePrice    float64       `json:"basePrice"`
	Discount     float64       `json:"discount"`
	Slug         string        `json:"slug,omitempty"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	Status       string        `json:"status"`
	SKU          string        `json:"sku,omitempty"`
	ProductCode  string        `json:"product_code,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	CategoryID   int64         `json:"category_id,omitempty"`
	Category     *CategoryRef  `json:"category,omitempty"`
	Categories   []CategoryRef `json:"categories,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
	UpdatedAt    string        `json:"updated_at,omitempty"`
}

// EffectivePrice prefers BasePrice over the legacy Price field.
func (p Product) EffectivePrice() float64 {
	if p.BasePrice != 0 {
		return p.BasePrice
	}
	return p.Price
}

// MainCategory returns the product's primary category name.
func (p Product) MainCategory() string {
	if p.Category != nil && p.Category.Name != "" {
		return p.Category.Name
	}
	if len(p.Categories) > 0 {
		return p.Categories[0].Name
	}
	return "Uncategorized"
}

// StockLabel maps the raw status string to the display status used by the
// status filter and badges. Unknown values deliberately read as in stock.
func (p Product) StockLabel() string {
	switch strings.ToLower(p.Status) {
	case "", "active":
		return "In Stock"
	case "low_stock":
		return "Low Stock"
	case "inactive", "out_of_stock":
		return "Out of Stock"
	default:
		return "In Stock"
	}
}
