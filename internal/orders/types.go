// Package orders adapts the order service: the order list, per-order
// detail, and the status / payment-status transitions.
package orders

import "strings"

// OrderDetail is one line item on an order.
type OrderDetail struct {
	ID               string  `json:"id"`
	OrderID          string  `json:"orderId"`
	ProductID        string  `json:"productId"`
	VariantID        string  `json:"variantId"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
	Discount         float64 `json:"discount"`
	TotalPrice       float64 `json:"totalPrice"`
	ProductName      string  `json:"productName"`
	VariantColor     string  `json:"variantColor,omitempty"`
	VariantSize      string  `json:"variantSize,omitempty"`
	ProductThumbnail string  `json:"productThumbnail,omitempty"`
}

// Order as returned by the order service.
type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          string        `json:"status"`
	PaymentStatus   string        `json:"paymentStatus"`
	ShippingAddress string        `json:"shippingAddress"`
	BillingAddress  string        `json:"billingAddress,omitempty"`
	PromoCodeID     string        `json:"promoCodeId,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt,omitempty"`
	OrderDetails    []OrderDetail `json:"orderDetails,omitempty"`
}

// DisplayStatus folds the backend's raw status vocabulary into the four
// values shown in the dashboard and used by the status filter.
func DisplayStatus(status string) string {
	if status == "" {
		return "Processing"
	}
	switch strings.ToUpper(status) {
	case "PENDING", "PROCESSING":
		return "Processing"
	case "SHIPPED":
		return "Shipped"
	case "DELIVERED", "COMPLETED":
		return "Delivered"
	case "CANCELLED", "CANCELED":
		return "Canceled"
	default:
		return strings.ToUpper(status[:1]) + strings.ToLower(status[1:])
	}
}

// PaymentMethod is inferred from the payment status; the backend does not
// report the actual instrument.
func (o Order) PaymentMethod() string {
	if o.PaymentStatus == "PAID" {
		return "Banking"
	}
	return "COD"
}

// ItemCount sums the line-item quantities.
func (o Order) ItemCount() int {
	total := 0
	for _, d := range o.OrderDetails {
		total += d.Quantity
	}
	return total
}

// IsPending reports whether the order still counts as open in the sales
// summary.
func (o Order) IsPending() bool {
	s := strings.ToUpper(o.Status)
	return s == "PENDING" || s == "PROCESSING"
}
