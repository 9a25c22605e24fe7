package domain

import "time"

type OrderStatus string

// Status is free text in the store; these are the two values the UI knows.
const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
)

const DefaultOrderNotes = "Guest order"

// LineItem is one product+quantity entry in a cart or in the snapshot an
// order keeps. It carries a copy of the product fields the storefront needs
// to render it, so later catalog edits never change a placed order.
type LineItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand,omitempty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable after creation. Items holds the JSON-encoded line item
// snapshot exactly as stored; callers decode it themselves.
type Order struct {
	ID        string      `json:"id"`
	BuyerID   string      `json:"buyerId"`
	Items     string      `json:"items"`
	Subtotal  float64     `json:"subtotal"`
	Status    OrderStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
