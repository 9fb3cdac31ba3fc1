package models

import "time"

type Seller struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSellerRequest represents the request body for creating a seller
type CreateSellerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// UpdateSellerRequest represents the request body for updating a seller
type UpdateSellerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// SellerTotals holds aggregate figures for a seller, always recomputed
// from purchase records rather than stored on the seller row.
type SellerTotals struct {
	TotalPurchased float64 `json:"total_purchased"`
	TotalPaid      float64 `json:"total_paid"`
	TotalDue       float64 `json:"total_due"`
}
