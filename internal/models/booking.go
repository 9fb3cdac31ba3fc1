package models

import "time"

// BookingStatus represents the lifecycle of a forward commitment
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusFulfilled BookingStatus = "fulfilled"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a forward commitment by a customer at an estimated rate.
// FulfilledSaleID links to the sale that eventually fulfilled it.
type Booking struct {
	ID              int           `json:"id"`
	Date            time.Time     `json:"date"`
	CustomerID      int           `json:"customer_id"`
	CustomerName    string        `json:"customer_name"`
	Weight          float64       `json:"weight"`
	EstimatedRate   float64       `json:"estimated_rate"`
	EstimatedAmount float64       `json:"estimated_amount"`
	Status          BookingStatus `json:"status"`
	FulfilledSaleID *int          `json:"fulfilled_sale_id,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CreateBookingRequest represents the request body for creating a booking.
// EstimatedAmount is derived server-side; new bookings start as pending.
type CreateBookingRequest struct {
	Date          string  `json:"date"`
	CustomerID    int     `json:"customer_id"`
	Weight        float64 `json:"weight"`
	EstimatedRate float64 `json:"estimated_rate"`
	Notes         string  `json:"notes"`
}

// UpdateBookingRequest represents the request body for editing a booking
type UpdateBookingRequest struct {
	Date          string  `json:"date"`
	CustomerID    int     `json:"customer_id"`
	Weight        float64 `json:"weight"`
	EstimatedRate float64 `json:"estimated_rate"`
	Notes         string  `json:"notes"`
}

// UpdateBookingStatusRequest marks a booking fulfilled or cancelled
type UpdateBookingStatusRequest struct {
	Status          BookingStatus `json:"status"`
	FulfilledSaleID *int          `json:"fulfilled_sale_id"`
}
