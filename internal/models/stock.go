package models

import "time"

// LotBalance is the remaining stock position of a single purchase lot.
// SoldWeight only counts sales explicitly linked to the lot.
type LotBalance struct {
	PurchaseID      int       `json:"purchase_id"`
	Date            time.Time `json:"date"`
	SellerName      string    `json:"seller_name"`
	Weight          float64   `json:"weight"`
	RatePerGram     float64   `json:"rate_per_gram"`
	SoldWeight      float64   `json:"sold_weight"`
	RemainingWeight float64   `json:"remaining_weight"`
	RemainingValue  float64   `json:"remaining_value"`
}

// StockSummary is the aggregate stock position across all purchases and
// sales. CurrentStockValue uses the weighted-average purchase rate, not
// per-lot costing, so it stays meaningful when lot linkage is incomplete.
type StockSummary struct {
	TotalPurchasedWeight float64 `json:"total_purchased_weight"`
	TotalSoldWeight      float64 `json:"total_sold_weight"`
	CurrentStockWeight   float64 `json:"current_stock_weight"`
	TotalPurchaseCost    float64 `json:"total_purchase_cost"`
	TotalSaleAmount      float64 `json:"total_sale_amount"`
	AvgPurchaseRate      float64 `json:"avg_purchase_rate"`
	CurrentStockValue    float64 `json:"current_stock_value"`
	ProfitLoss           float64 `json:"profit_loss"`
}
