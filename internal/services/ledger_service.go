package services

import (
	"context"

	"bullion-backend/internal/ledger"
	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
)

type LedgerService struct {
	PurchaseRepo *repositories.PurchaseRepository
	SaleRepo     *repositories.SaleRepository
}

// LedgerView is the transaction ledger payload. Transactions carry running
// balances computed over the filtered subset only; Summary and Count always
// cover the full unfiltered feed.
type LedgerView struct {
	Transactions []models.Transaction `json:"transactions"`
	Summary      models.LedgerSummary `json:"summary"`
	Count        int                  `json:"count"`
}

func NewLedgerService(purchaseRepo *repositories.PurchaseRepository, saleRepo *repositories.SaleRepository) *LedgerService {
	return &LedgerService{PurchaseRepo: purchaseRepo, SaleRepo: saleRepo}
}

// GetLedger rebuilds the transaction feed from fresh snapshots and applies
// the filter.
func (s *LedgerService) GetLedger(ctx context.Context, filter models.LedgerFilter) (*LedgerView, error) {
	purchases, err := s.PurchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.SaleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	all := ledger.Transactions(purchases, sales)
	filtered := ledger.WithRunningBalance(ledger.Filter(all, filter))

	return &LedgerView{
		Transactions: filtered,
		Summary:      ledger.Summary(all),
		Count:        len(all),
	}, nil
}
