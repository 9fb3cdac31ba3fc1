package ledger

import (
	"testing"
	"time"

	"bullion-backend/internal/models"

	"github.com/google/go-cmp/cmp"
)

func intPtr(i int) *int { return &i }

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestLotBalances(t *testing.T) {
	purchases := []*models.Purchase{
		{ID: 1, Date: day(1), SellerName: "Sharma Metals", Weight: 100, RatePerGram: 60},
		{ID: 2, Date: day(2), SellerName: "Gupta Traders", Weight: 50, RatePerGram: 62},
		{ID: 3, Date: day(3), SellerName: "Verma & Sons", Weight: 30, RatePerGram: 61},
	}
	sales := []*models.Sale{
		{ID: 1, Weight: 40, LinkedPurchaseID: intPtr(1)},
		{ID: 2, Weight: 50, LinkedPurchaseID: intPtr(2)}, // sells lot 2 out entirely
		{ID: 3, Weight: 25},                              // unlinked, draws no lot down
	}

	got := LotBalances(purchases, sales)
	want := []models.LotBalance{
		{
			PurchaseID:      1,
			Date:            day(1),
			SellerName:      "Sharma Metals",
			Weight:          100,
			RatePerGram:     60,
			SoldWeight:      40,
			RemainingWeight: 60,
			RemainingValue:  3600,
		},
		{
			PurchaseID:      3,
			Date:            day(3),
			SellerName:      "Verma & Sons",
			Weight:          30,
			RatePerGram:     61,
			SoldWeight:      0,
			RemainingWeight: 30,
			RemainingValue:  1830,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LotBalances mismatch (-want +got):\n%s", diff)
	}
}

func TestLotBalancesOversoldLotOmitted(t *testing.T) {
	purchases := []*models.Purchase{
		{ID: 1, Weight: 10, RatePerGram: 60},
	}
	sales := []*models.Sale{
		{ID: 1, Weight: 15, LinkedPurchaseID: intPtr(1)},
	}
	if got := LotBalances(purchases, sales); got != nil {
		t.Errorf("expected no lots, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	purchases := []*models.Purchase{
		{ID: 1, Weight: 100, TotalCost: 6000},
		{ID: 2, Weight: 50, TotalCost: 3100},
	}
	sales := []*models.Sale{
		{ID: 1, Weight: 40, TotalSaleAmount: 2600, LinkedPurchaseID: intPtr(1)},
		{ID: 2, Weight: 20, TotalSaleAmount: 1300}, // unlinked sales still count here
	}

	got := Summarize(purchases, sales)

	avgRate := 9100.0 / 150.0
	want := models.StockSummary{
		TotalPurchasedWeight: 150,
		TotalSoldWeight:      60,
		CurrentStockWeight:   90,
		TotalPurchaseCost:    9100,
		TotalSaleAmount:      3900,
		AvgPurchaseRate:      avgRate,
		CurrentStockValue:    90 * avgRate,
		ProfitLoss:           3900 - 9100,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}

	// Weight conservation: purchased = sold + current.
	if got.TotalPurchasedWeight != got.TotalSoldWeight+got.CurrentStockWeight {
		t.Errorf("weight not conserved: %v != %v + %v",
			got.TotalPurchasedWeight, got.TotalSoldWeight, got.CurrentStockWeight)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, nil)
	if diff := cmp.Diff(models.StockSummary{}, got); diff != "" {
		t.Errorf("expected zero summary (-want +got):\n%s", diff)
	}
}

func TestSummarizeNoPurchases(t *testing.T) {
	sales := []*models.Sale{{ID: 1, Weight: 10, TotalSaleAmount: 650}}
	got := Summarize(nil, sales)

	// No purchases means no average rate; stock value must stay zero rather
	// than divide by zero.
	if got.AvgPurchaseRate != 0 {
		t.Errorf("AvgPurchaseRate = %v, want 0", got.AvgPurchaseRate)
	}
	if got.CurrentStockValue != 0 {
		t.Errorf("CurrentStockValue = %v, want 0", got.CurrentStockValue)
	}
	if got.CurrentStockWeight != -10 {
		t.Errorf("CurrentStockWeight = %v, want -10", got.CurrentStockWeight)
	}
}
