package services

import (
	"context"

	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
	"bullion-backend/internal/timeutil"
)

type SaleService struct {
	Repo         *repositories.SaleRepository
	CustomerRepo *repositories.CustomerRepository
	notifier     ChangeNotifier
}

func NewSaleService(repo *repositories.SaleRepository, customerRepo *repositories.CustomerRepository, notifier ChangeNotifier) *SaleService {
	return &SaleService{Repo: repo, CustomerRepo: customerRepo, notifier: orNoop(notifier)}
}

// CreateSale records a disposition. LinkedPurchaseID is optional; sales
// without it are not attributed to any lot.
func (s *SaleService) CreateSale(ctx context.Context, req *models.CreateSaleRequest) (*models.Sale, error) {
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	date, err := timeutil.ParseInIST(timeutil.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	totalSaleAmount := req.Weight * req.RatePerGram
	sale := &models.Sale{
		Date:             date,
		CustomerID:       customer.ID,
		CustomerName:     customer.Name,
		Weight:           req.Weight,
		RatePerGram:      req.RatePerGram,
		TotalSaleAmount:  totalSaleAmount,
		AmountReceived:   req.AmountReceived,
		AmountPending:    totalSaleAmount - req.AmountReceived,
		Status:           models.StatusFor(totalSaleAmount, req.AmountReceived),
		LinkedPurchaseID: req.LinkedPurchaseID,
		Notes:            req.Notes,
	}
	if err := s.Repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("sales")
	return sale, nil
}

func (s *SaleService) GetSale(ctx context.Context, id int) (*models.Sale, error) {
	return s.Repo.Get(ctx, id)
}

func (s *SaleService) ListSales(ctx context.Context) ([]*models.Sale, error) {
	return s.Repo.List(ctx)
}

func (s *SaleService) ListSalesByCustomer(ctx context.Context, customerID int) ([]*models.Sale, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

func (s *SaleService) UpdateSale(ctx context.Context, id int, req *models.UpdateSaleRequest) (*models.Sale, error) {
	sale, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	date, err := timeutil.ParseInIST(timeutil.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	totalSaleAmount := req.Weight * req.RatePerGram
	sale.Date = date
	sale.CustomerID = customer.ID
	sale.CustomerName = customer.Name
	sale.Weight = req.Weight
	sale.RatePerGram = req.RatePerGram
	sale.TotalSaleAmount = totalSaleAmount
	sale.AmountReceived = req.AmountReceived
	sale.AmountPending = totalSaleAmount - req.AmountReceived
	sale.Status = models.StatusFor(totalSaleAmount, req.AmountReceived)
	sale.LinkedPurchaseID = req.LinkedPurchaseID
	sale.Notes = req.Notes

	if err := s.Repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("sales")
	return sale, nil
}

func (s *SaleService) DeleteSale(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.CollectionChanged("sales")
	return nil
}
