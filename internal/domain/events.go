package domain

import "time"

type OrderPlacedEvent struct {
	OrderID   string     `json:"order_id"`
	Email     string     `json:"email"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Timestamp time.Time  `json:"timestamp"`
}
