package services

import (
	"context"

	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
	"bullion-backend/internal/timeutil"
)

type PurchaseService struct {
	Repo       *repositories.PurchaseRepository
	SellerRepo *repositories.SellerRepository
	notifier   ChangeNotifier
}

func NewPurchaseService(repo *repositories.PurchaseRepository, sellerRepo *repositories.SellerRepository, notifier ChangeNotifier) *PurchaseService {
	return &PurchaseService{Repo: repo, SellerRepo: sellerRepo, notifier: orNoop(notifier)}
}

// CreatePurchase records a new lot. The money columns are derived here from
// weight, rate and the amount paid; whatever the client sent for them is
// ignored.
func (s *PurchaseService) CreatePurchase(ctx context.Context, req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	seller, err := s.SellerRepo.Get(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}
	date, err := timeutil.ParseInIST(timeutil.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	totalCost := req.Weight * req.RatePerGram
	purchase := &models.Purchase{
		Date:        date,
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		Quantity:    req.Quantity,
		Weight:      req.Weight,
		RatePerGram: req.RatePerGram,
		TotalCost:   totalCost,
		AmountPaid:  req.AmountPaid,
		AmountDue:   totalCost - req.AmountPaid,
		Status:      models.StatusFor(totalCost, req.AmountPaid),
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(ctx, purchase); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("purchases")
	return purchase, nil
}

func (s *PurchaseService) GetPurchase(ctx context.Context, id int) (*models.Purchase, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PurchaseService) ListPurchases(ctx context.Context) ([]*models.Purchase, error) {
	return s.Repo.List(ctx)
}

func (s *PurchaseService) ListPurchasesBySeller(ctx context.Context, sellerID int) ([]*models.Purchase, error) {
	return s.Repo.ListBySeller(ctx, sellerID)
}

func (s *PurchaseService) UpdatePurchase(ctx context.Context, id int, req *models.UpdatePurchaseRequest) (*models.Purchase, error) {
	purchase, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	seller, err := s.SellerRepo.Get(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}
	date, err := timeutil.ParseInIST(timeutil.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	totalCost := req.Weight * req.RatePerGram
	purchase.Date = date
	purchase.SellerID = seller.ID
	purchase.SellerName = seller.Name
	purchase.Quantity = req.Quantity
	purchase.Weight = req.Weight
	purchase.RatePerGram = req.RatePerGram
	purchase.TotalCost = totalCost
	purchase.AmountPaid = req.AmountPaid
	purchase.AmountDue = totalCost - req.AmountPaid
	purchase.Status = models.StatusFor(totalCost, req.AmountPaid)
	purchase.Notes = req.Notes

	if err := s.Repo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("purchases")
	return purchase, nil
}

func (s *PurchaseService) DeletePurchase(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.CollectionChanged("purchases")
	return nil
}
