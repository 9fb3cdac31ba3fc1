package models

import "time"

// Sale is a single disposition of metal to a customer. LinkedPurchaseID
// optionally ties the sale to the purchase lot it draws down; unlinked sales
// are not attributed to any lot for per-lot stock purposes.
type Sale struct {
	ID               int           `json:"id"`
	Date             time.Time     `json:"date"`
	CustomerID       int           `json:"customer_id"`
	CustomerName     string        `json:"customer_name"`
	Weight           float64       `json:"weight"`
	RatePerGram      float64       `json:"rate_per_gram"`
	TotalSaleAmount  float64       `json:"total_sale_amount"`
	AmountReceived   float64       `json:"amount_received"`
	AmountPending    float64       `json:"amount_pending"`
	Status           PaymentStatus `json:"status"`
	LinkedPurchaseID *int          `json:"linked_purchase_id,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// CreateSaleRequest represents the request body for recording a sale.
// TotalSaleAmount, AmountPending and Status are derived server-side.
type CreateSaleRequest struct {
	Date             string  `json:"date"`
	CustomerID       int     `json:"customer_id"`
	Weight           float64 `json:"weight"`
	RatePerGram      float64 `json:"rate_per_gram"`
	AmountReceived   float64 `json:"amount_received"`
	LinkedPurchaseID *int    `json:"linked_purchase_id"`
	Notes            string  `json:"notes"`
}

// UpdateSaleRequest represents the request body for editing a sale
type UpdateSaleRequest struct {
	Date             string  `json:"date"`
	CustomerID       int     `json:"customer_id"`
	Weight           float64 `json:"weight"`
	RatePerGram      float64 `json:"rate_per_gram"`
	AmountReceived   float64 `json:"amount_received"`
	LinkedPurchaseID *int    `json:"linked_purchase_id"`
	Notes            string  `json:"notes"`
}
