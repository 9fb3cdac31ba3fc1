// Package ledger derives totals, stock positions and the transaction feed
// from raw purchase, sale and booking records. Everything here is a pure
// fold over the latest collection snapshots; nothing is cached or updated
// incrementally.
package ledger

import "bullion-backend/internal/models"

// SellerTotalsFor sums the purchases belonging to a seller. An empty or
// non-matching snapshot yields all zeros.
func SellerTotalsFor(sellerID int, purchases []*models.Purchase) models.SellerTotals {
	var t models.SellerTotals
	for _, p := range purchases {
		if p.SellerID != sellerID {
			continue
		}
		t.TotalPurchased += p.TotalCost
		t.TotalPaid += p.AmountPaid
	}
	t.TotalDue = t.TotalPurchased - t.TotalPaid
	return t
}

// CustomerTotalsFor sums the sales and bookings belonging to a customer.
func CustomerTotalsFor(customerID int, sales []*models.Sale, bookings []*models.Booking) models.CustomerTotals {
	var t models.CustomerTotals
	for _, s := range sales {
		if s.CustomerID != customerID {
			continue
		}
		t.TotalPurchased += s.TotalSaleAmount
		t.TotalReceived += s.AmountReceived
	}
	for _, b := range bookings {
		if b.CustomerID != customerID {
			continue
		}
		t.TotalBooked += b.EstimatedAmount
	}
	t.TotalPending = t.TotalPurchased - t.TotalReceived
	return t
}
