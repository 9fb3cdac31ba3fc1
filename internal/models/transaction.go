package models

import "time"

// TransactionType classifies an entry in the derived transaction ledger
type TransactionType string

const (
	TransactionTypePurchase            TransactionType = "purchase"
	TransactionTypeSale                TransactionType = "sale"
	TransactionTypePaymentToSeller     TransactionType = "payment_to_seller"
	TransactionTypePaymentFromCustomer TransactionType = "payment_from_customer"
)

// IsPayment reports whether the entry is a payment leg rather than the
// purchase/sale itself.
func (t TransactionType) IsPayment() bool {
	return t == TransactionTypePaymentToSeller || t == TransactionTypePaymentFromCustomer
}

// IsCredit reports whether the entry increases the running balance.
// Sales and customer payments are credits; purchases and seller payments
// are debits.
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeSale || t == TransactionTypePaymentFromCustomer
}

// Transaction is a view-only projection of a purchase or sale (and its
// payment leg) into a uniform ledger row. It is never persisted; the feed is
// rebuilt from scratch on every request.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	RelatedID   int             `json:"related_id"`
	RelatedName string          `json:"related_name"`
	Balance     float64         `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerFilter narrows the transaction feed. Category and date bounds
// compose with logical AND; zero values mean "no constraint".
type LedgerFilter struct {
	Category string     // "all", "purchase", "sale" or "payment"
	From     *time.Time // inclusive
	To       *time.Time // inclusive
}

// LedgerSummary aggregates the unfiltered feed by entry type
type LedgerSummary struct {
	TotalPurchases             float64 `json:"total_purchases"`
	TotalSales                 float64 `json:"total_sales"`
	TotalPaymentsToSellers     float64 `json:"total_payments_to_sellers"`
	TotalPaymentsFromCustomers float64 `json:"total_payments_from_customers"`
	NetProfit                  float64 `json:"net_profit"`
}
