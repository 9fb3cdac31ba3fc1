package ledger

import (
	"fmt"
	"sort"

	"bullion-backend/internal/models"
)

// Transactions flattens purchases and sales into the unified ledger feed.
// Each purchase emits a purchase entry at full cost plus a payment_to_seller
// entry when anything was paid; each sale emits a sale entry at full amount
// plus a payment_from_customer entry when anything was received. The feed is
// sorted by date descending, ties broken by creation timestamp descending.
func Transactions(purchases []*models.Purchase, sales []*models.Sale) []models.Transaction {
	var txns []models.Transaction

	for _, p := range purchases {
		txns = append(txns, models.Transaction{
			ID:          fmt.Sprintf("purchase-%d", p.ID),
			Type:        models.TransactionTypePurchase,
			Date:        p.Date,
			Amount:      p.TotalCost,
			Description: fmt.Sprintf("Purchase from %s - %.2fg @ Rs.%.2f/g", p.SellerName, p.Weight, p.RatePerGram),
			RelatedID:   p.SellerID,
			RelatedName: p.SellerName,
			CreatedAt:   p.CreatedAt,
		})
		if p.AmountPaid > 0 {
			txns = append(txns, models.Transaction{
				ID:          fmt.Sprintf("payment-seller-%d", p.ID),
				Type:        models.TransactionTypePaymentToSeller,
				Date:        p.Date,
				Amount:      p.AmountPaid,
				Description: fmt.Sprintf("Payment to %s for purchase", p.SellerName),
				RelatedID:   p.SellerID,
				RelatedName: p.SellerName,
				CreatedAt:   p.CreatedAt,
			})
		}
	}

	for _, s := range sales {
		txns = append(txns, models.Transaction{
			ID:          fmt.Sprintf("sale-%d", s.ID),
			Type:        models.TransactionTypeSale,
			Date:        s.Date,
			Amount:      s.TotalSaleAmount,
			Description: fmt.Sprintf("Sale to %s - %.2fg @ Rs.%.2f/g", s.CustomerName, s.Weight, s.RatePerGram),
			RelatedID:   s.CustomerID,
			RelatedName: s.CustomerName,
			CreatedAt:   s.CreatedAt,
		})
		if s.AmountReceived > 0 {
			txns = append(txns, models.Transaction{
				ID:          fmt.Sprintf("payment-customer-%d", s.ID),
				Type:        models.TransactionTypePaymentFromCustomer,
				Date:        s.Date,
				Amount:      s.AmountReceived,
				Description: fmt.Sprintf("Payment from %s for sale", s.CustomerName),
				RelatedID:   s.CustomerID,
				RelatedName: s.CustomerName,
				CreatedAt:   s.CreatedAt,
			})
		}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
	return txns
}

// Filter keeps transactions matching the category and inclusive date bounds.
// All constraints compose with AND. The "payment" category matches both
// payment directions.
func Filter(txns []models.Transaction, f models.LedgerFilter) []models.Transaction {
	var out []models.Transaction
	for _, t := range txns {
		switch f.Category {
		case "", "all":
		case "purchase":
			if t.Type != models.TransactionTypePurchase {
				continue
			}
		case "sale":
			if t.Type != models.TransactionTypeSale {
				continue
			}
		case "payment":
			if !t.Type.IsPayment() {
				continue
			}
		}
		if f.From != nil && t.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && t.Date.After(*f.To) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// WithRunningBalance stamps the cumulative signed balance onto the feed in
// display order: credits add, debits subtract. The balance reflects only the
// rows in the given slice, so a filtered view carries its own balance
// independent of the global history.
func WithRunningBalance(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txns))
	balance := 0.0
	for i, t := range txns {
		if t.Type.IsCredit() {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
		t.Balance = balance
		out[i] = t
	}
	return out
}

// Summary totals the feed by entry type.
func Summary(txns []models.Transaction) models.LedgerSummary {
	var s models.LedgerSummary
	for _, t := range txns {
		switch t.Type {
		case models.TransactionTypePurchase:
			s.TotalPurchases += t.Amount
		case models.TransactionTypeSale:
			s.TotalSales += t.Amount
		case models.TransactionTypePaymentToSeller:
			s.TotalPaymentsToSellers += t.Amount
		case models.TransactionTypePaymentFromCustomer:
			s.TotalPaymentsFromCustomers += t.Amount
		}
	}
	s.NetProfit = s.TotalSales - s.TotalPurchases
	return s
}
