package domain

import "time"

// Product is written only by the seeding process; the storefront reads it.
type Product struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	IsNew       bool      `json:"isNew"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	Variants    []Variant `json:"variants"`
}

// Variant is a purchasable size/price option of a product, created alongside
// it and immutable thereafter.
type Variant struct {
	ID      string  `json:"id"`
	Size    string  `json:"size"`
	Price   float64 `json:"price"`
	CaseQty int     `json:"caseQty"`
}
