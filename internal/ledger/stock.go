package ledger

import "bullion-backend/internal/models"

// LotBalances computes the remaining stock of every purchase lot. Only sales
// explicitly linked to a lot draw it down; unlinked sales leave every lot
// untouched here and only show up in the aggregate summary. Lots that are
// fully sold out are omitted.
func LotBalances(purchases []*models.Purchase, sales []*models.Sale) []models.LotBalance {
	soldByLot := make(map[int]float64)
	for _, s := range sales {
		if s.LinkedPurchaseID != nil {
			soldByLot[*s.LinkedPurchaseID] += s.Weight
		}
	}

	var lots []models.LotBalance
	for _, p := range purchases {
		sold := soldByLot[p.ID]
		remaining := p.Weight - sold
		if remaining <= 0 {
			continue
		}
		lots = append(lots, models.LotBalance{
			PurchaseID:      p.ID,
			Date:            p.Date,
			SellerName:      p.SellerName,
			Weight:          p.Weight,
			RatePerGram:     p.RatePerGram,
			SoldWeight:      sold,
			RemainingWeight: remaining,
			RemainingValue:  remaining * p.RatePerGram,
		})
	}
	return lots
}

// Summarize computes the aggregate stock position. The current stock value
// uses the weighted-average purchase rate over all purchases, so all sales
// count against it whether lot-linked or not.
func Summarize(purchases []*models.Purchase, sales []*models.Sale) models.StockSummary {
	var sum models.StockSummary
	for _, p := range purchases {
		sum.TotalPurchasedWeight += p.Weight
		sum.TotalPurchaseCost += p.TotalCost
	}
	for _, s := range sales {
		sum.TotalSoldWeight += s.Weight
		sum.TotalSaleAmount += s.TotalSaleAmount
	}
	sum.CurrentStockWeight = sum.TotalPurchasedWeight - sum.TotalSoldWeight
	if sum.TotalPurchasedWeight > 0 {
		sum.AvgPurchaseRate = sum.TotalPurchaseCost / sum.TotalPurchasedWeight
	}
	sum.CurrentStockValue = sum.CurrentStockWeight * sum.AvgPurchaseRate
	sum.ProfitLoss = sum.TotalSaleAmount - sum.TotalPurchaseCost
	return sum
}
