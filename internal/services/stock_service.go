package services

import (
	"context"

	"bullion-backend/internal/ledger"
	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
)

type StockService struct {
	PurchaseRepo *repositories.PurchaseRepository
	SaleRepo     *repositories.SaleRepository
}

// StockReport is the stock page payload: the aggregate position plus the
// per-lot balances that still hold stock.
type StockReport struct {
	Summary models.StockSummary `json:"summary"`
	Lots    []models.LotBalance `json:"lots"`
}

// DashboardReport is the dashboard payload: the aggregate position plus the
// most recent activity.
type DashboardReport struct {
	Summary         models.StockSummary `json:"summary"`
	RecentPurchases []*models.Purchase  `json:"recent_purchases"`
	RecentSales     []*models.Sale      `json:"recent_sales"`
}

func NewStockService(purchaseRepo *repositories.PurchaseRepository, saleRepo *repositories.SaleRepository) *StockService {
	return &StockService{PurchaseRepo: purchaseRepo, SaleRepo: saleRepo}
}

// GetStockReport recomputes the stock position from fresh snapshots.
func (s *StockService) GetStockReport(ctx context.Context) (*StockReport, error) {
	purchases, sales, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}
	return &StockReport{
		Summary: ledger.Summarize(purchases, sales),
		Lots:    ledger.LotBalances(purchases, sales),
	}, nil
}

// GetDashboard returns the aggregate position and the five most recent
// purchases and sales (snapshots are already newest-first).
func (s *StockService) GetDashboard(ctx context.Context) (*DashboardReport, error) {
	purchases, sales, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}
	report := &DashboardReport{
		Summary:         ledger.Summarize(purchases, sales),
		RecentPurchases: purchases,
		RecentSales:     sales,
	}
	if len(report.RecentPurchases) > 5 {
		report.RecentPurchases = report.RecentPurchases[:5]
	}
	if len(report.RecentSales) > 5 {
		report.RecentSales = report.RecentSales[:5]
	}
	return report, nil
}

func (s *StockService) snapshots(ctx context.Context) ([]*models.Purchase, []*models.Sale, error) {
	purchases, err := s.PurchaseRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	sales, err := s.SaleRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return purchases, sales, nil
}
