package ledger

import (
	"testing"

	"bullion-backend/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestSellerTotalsFor(t *testing.T) {
	purchases := []*models.Purchase{
		{ID: 1, SellerID: 7, TotalCost: 50000, AmountPaid: 30000},
		{ID: 2, SellerID: 7, TotalCost: 20000, AmountPaid: 20000},
		{ID: 3, SellerID: 9, TotalCost: 99999, AmountPaid: 0},
	}

	got := SellerTotalsFor(7, purchases)
	want := models.SellerTotals{
		TotalPurchased: 70000,
		TotalPaid:      50000,
		TotalDue:       20000,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SellerTotalsFor mismatch (-want +got):\n%s", diff)
	}
}

func TestSellerTotalsForNoPurchases(t *testing.T) {
	got := SellerTotalsFor(7, nil)
	if diff := cmp.Diff(models.SellerTotals{}, got); diff != "" {
		t.Errorf("expected zero totals for empty snapshot (-want +got):\n%s", diff)
	}
}

func TestCustomerTotalsFor(t *testing.T) {
	sales := []*models.Sale{
		{ID: 1, CustomerID: 3, TotalSaleAmount: 12000, AmountReceived: 5000},
		{ID: 2, CustomerID: 3, TotalSaleAmount: 8000, AmountReceived: 8000},
		{ID: 3, CustomerID: 4, TotalSaleAmount: 7777, AmountReceived: 7777},
	}
	bookings := []*models.Booking{
		{ID: 1, CustomerID: 3, EstimatedAmount: 25000},
		{ID: 2, CustomerID: 4, EstimatedAmount: 1000},
		{ID: 3, CustomerID: 3, EstimatedAmount: 5000, Status: models.BookingStatusCancelled},
	}

	got := CustomerTotalsFor(3, sales, bookings)
	want := models.CustomerTotals{
		TotalBooked:    30000, // cancelled bookings still count toward the booked total
		TotalPurchased: 20000,
		TotalReceived:  13000,
		TotalPending:   7000,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CustomerTotalsFor mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomerTotalsForUnknownCustomer(t *testing.T) {
	sales := []*models.Sale{{ID: 1, CustomerID: 1, TotalSaleAmount: 100, AmountReceived: 100}}
	got := CustomerTotalsFor(99, sales, nil)
	if diff := cmp.Diff(models.CustomerTotals{}, got); diff != "" {
		t.Errorf("expected zero totals (-want +got):\n%s", diff)
	}
}
