package models

import "time"

// PaymentStatus tracks how much of a purchase or sale has been settled
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending" // nothing paid yet
	PaymentStatusPartial PaymentStatus = "partial" // some payment made
	PaymentStatusPaid    PaymentStatus = "paid"    // nothing outstanding
)

// StatusFor derives the payment status from the total amount and the amount
// settled so far: paid when the remainder is exactly zero, partial when any
// payment was made, pending otherwise.
func StatusFor(total, paid float64) PaymentStatus {
	switch {
	case total-paid == 0:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// Purchase is a single acquisition of metal from a seller. One purchase is a
// lot: sales may draw stock down from it via LinkedPurchaseID.
type Purchase struct {
	ID          int           `json:"id"`
	Date        time.Time     `json:"date"`
	SellerID    int           `json:"seller_id"`
	SellerName  string        `json:"seller_name"`
	Quantity    int           `json:"quantity"`
	Weight      float64       `json:"weight"`
	RatePerGram float64       `json:"rate_per_gram"`
	TotalCost   float64       `json:"total_cost"`
	AmountPaid  float64       `json:"amount_paid"`
	AmountDue   float64       `json:"amount_due"`
	Status      PaymentStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CreatePurchaseRequest represents the request body for recording a purchase.
// TotalCost, AmountDue and Status are derived server-side.
type CreatePurchaseRequest struct {
	Date        string  `json:"date"`
	SellerID    int     `json:"seller_id"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"`
	RatePerGram float64 `json:"rate_per_gram"`
	AmountPaid  float64 `json:"amount_paid"`
	Notes       string  `json:"notes"`
}

// UpdatePurchaseRequest represents the request body for editing a purchase
type UpdatePurchaseRequest struct {
	Date        string  `json:"date"`
	SellerID    int     `json:"seller_id"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"`
	RatePerGram float64 `json:"rate_per_gram"`
	AmountPaid  float64 `json:"amount_paid"`
	Notes       string  `json:"notes"`
}
