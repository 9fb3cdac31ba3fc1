package ledger

import (
	"testing"
	"time"

	"bullion-backend/internal/models"

	"github.com/google/go-cmp/cmp"
)

func stamp(d, h int) time.Time {
	return time.Date(2026, time.March, d, h, 0, 0, 0, time.UTC)
}

func testPurchases() []*models.Purchase {
	return []*models.Purchase{
		{
			ID: 1, Date: day(1), SellerID: 7, SellerName: "Sharma Metals",
			Weight: 100, RatePerGram: 60, TotalCost: 6000, AmountPaid: 4000,
			CreatedAt: stamp(1, 10),
		},
		{
			ID: 2, Date: day(3), SellerID: 9, SellerName: "Gupta Traders",
			Weight: 50, RatePerGram: 62, TotalCost: 3100, AmountPaid: 0,
			CreatedAt: stamp(3, 9),
		},
	}
}

func testSales() []*models.Sale {
	return []*models.Sale{
		{
			ID: 1, Date: day(2), CustomerID: 3, CustomerName: "Anita Jewellers",
			Weight: 40, RatePerGram: 65, TotalSaleAmount: 2600, AmountReceived: 2600,
			CreatedAt: stamp(2, 12),
		},
	}
}

func TestTransactionsEmission(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())

	// Purchase 1 emits purchase + payment, purchase 2 only the purchase
	// (nothing paid), sale 1 emits sale + payment.
	if len(txns) != 5 {
		t.Fatalf("len(txns) = %d, want 5", len(txns))
	}

	byID := make(map[string]models.Transaction)
	for _, txn := range txns {
		byID[txn.ID] = txn
	}
	if _, ok := byID["payment-seller-2"]; ok {
		t.Error("unpaid purchase must not emit a payment entry")
	}

	pay := byID["payment-seller-1"]
	if pay.Type != models.TransactionTypePaymentToSeller || pay.Amount != 4000 {
		t.Errorf("payment-seller-1 = %+v, want payment_to_seller of 4000", pay)
	}
	if pay.Description != "Payment to Sharma Metals for purchase" {
		t.Errorf("unexpected description %q", pay.Description)
	}

	sale := byID["sale-1"]
	if sale.Description != "Sale to Anita Jewellers - 40.00g @ Rs.65.00/g" {
		t.Errorf("unexpected description %q", sale.Description)
	}
	if sale.RelatedID != 3 || sale.RelatedName != "Anita Jewellers" {
		t.Errorf("sale party = (%d, %q), want (3, Anita Jewellers)", sale.RelatedID, sale.RelatedName)
	}
}

func TestTransactionsOrdering(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())

	for i := 1; i < len(txns); i++ {
		prev, cur := txns[i-1], txns[i]
		if cur.Date.After(prev.Date) {
			t.Fatalf("feed not date-descending at %d: %s before %s", i, prev.ID, cur.ID)
		}
		if cur.Date.Equal(prev.Date) && cur.CreatedAt.After(prev.CreatedAt) {
			t.Fatalf("tie at %d not broken by created_at descending", i)
		}
	}

	// Newest first: the day-3 purchase leads.
	if txns[0].ID != "purchase-2" {
		t.Errorf("txns[0].ID = %q, want purchase-2", txns[0].ID)
	}
}

func TestTransactionsIdempotent(t *testing.T) {
	a := Transactions(testPurchases(), testSales())
	b := Transactions(testPurchases(), testSales())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("rebuilding from the same snapshots must give the same feed (-a +b):\n%s", diff)
	}
}

func TestFilterByCategory(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())

	tests := []struct {
		category string
		want     int
	}{
		{"", 5},
		{"all", 5},
		{"purchase", 2},
		{"sale", 1},
		{"payment", 2}, // both payment directions
	}
	for _, tc := range tests {
		got := Filter(txns, models.LedgerFilter{Category: tc.category})
		if len(got) != tc.want {
			t.Errorf("Filter(category=%q) returned %d entries, want %d", tc.category, len(got), tc.want)
		}
	}
}

func TestFilterByDateRange(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())

	from, to := day(2), day(2)
	got := Filter(txns, models.LedgerFilter{From: &from, To: &to})

	// Only the day-2 sale and its payment fall inside the inclusive range.
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, txn := range got {
		if !txn.Date.Equal(day(2)) {
			t.Errorf("entry %s outside range", txn.ID)
		}
	}
}

func TestFilterComposesWithAnd(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())

	from := day(2)
	got := Filter(txns, models.LedgerFilter{Category: "purchase", From: &from})
	if len(got) != 1 || got[0].ID != "purchase-2" {
		t.Errorf("got %v, want only purchase-2", got)
	}
}

func TestWithRunningBalance(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())
	balanced := WithRunningBalance(txns)

	// Display order: purchase-2 (debit 3100), sale-1 (credit 2600),
	// payment-customer-1 (credit 2600), purchase-1 (debit 6000),
	// payment-seller-1 (debit 4000).
	wantBalances := []float64{-3100, -500, 2100, -3900, -7900}
	for i, want := range wantBalances {
		if balanced[i].Balance != want {
			t.Errorf("balance[%d] (%s) = %v, want %v", i, balanced[i].ID, balanced[i].Balance, want)
		}
	}

	// Input slice stays untouched.
	for _, txn := range txns {
		if txn.Balance != 0 {
			t.Errorf("input mutated: %s has balance %v", txn.ID, txn.Balance)
		}
	}
}

func TestWithRunningBalanceFilteredSubset(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())
	filtered := WithRunningBalance(Filter(txns, models.LedgerFilter{Category: "sale"}))

	// The filtered view carries its own balance, not the global one.
	if len(filtered) != 1 || filtered[0].Balance != 2600 {
		t.Errorf("filtered balance = %+v, want single entry at 2600", filtered)
	}
}

func TestSummary(t *testing.T) {
	txns := Transactions(testPurchases(), testSales())

	got := Summary(txns)
	want := models.LedgerSummary{
		TotalPurchases:             9100,
		TotalSales:                 2600,
		TotalPaymentsToSellers:     4000,
		TotalPaymentsFromCustomers: 2600,
		NetProfit:                  2600 - 9100,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryEmpty(t *testing.T) {
	got := Summary(nil)
	if diff := cmp.Diff(models.LedgerSummary{}, got); diff != "" {
		t.Errorf("expected zero summary (-want +got):\n%s", diff)
	}
}
