package services

import (
	"context"

	"bullion-backend/internal/ledger"
	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
)

type SellerService struct {
	Repo         *repositories.SellerRepository
	PurchaseRepo *repositories.PurchaseRepository
	notifier     ChangeNotifier
}

func NewSellerService(repo *repositories.SellerRepository, purchaseRepo *repositories.PurchaseRepository, notifier ChangeNotifier) *SellerService {
	return &SellerService{Repo: repo, PurchaseRepo: purchaseRepo, notifier: orNoop(notifier)}
}

func (s *SellerService) CreateSeller(ctx context.Context, req *models.CreateSellerRequest) (*models.Seller, error) {
	seller := &models.Seller{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := s.Repo.Create(ctx, seller); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("sellers")
	return seller, nil
}

func (s *SellerService) GetSeller(ctx context.Context, id int) (*models.Seller, error) {
	return s.Repo.Get(ctx, id)
}

func (s *SellerService) SearchByPhone(ctx context.Context, phone string) (*models.Seller, error) {
	return s.Repo.GetByPhone(ctx, phone)
}

func (s *SellerService) ListSellers(ctx context.Context) ([]*models.Seller, error) {
	return s.Repo.List(ctx)
}

func (s *SellerService) UpdateSeller(ctx context.Context, id int, req *models.UpdateSellerRequest) (*models.Seller, error) {
	seller, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	seller.Name = req.Name
	seller.Phone = req.Phone
	seller.Address = req.Address
	seller.Email = req.Email
	if err := s.Repo.Update(ctx, seller); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("sellers")
	return seller, nil
}

// DeleteSeller removes the seller only. Its purchases are kept; there is no
// cascading delete anywhere in the data model.
func (s *SellerService) DeleteSeller(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.CollectionChanged("sellers")
	return nil
}

// GetTotals recomputes the seller's aggregate figures from the full purchase
// snapshot. Nothing cached on the seller row is consulted.
func (s *SellerService) GetTotals(ctx context.Context, sellerID int) (models.SellerTotals, error) {
	purchases, err := s.PurchaseRepo.List(ctx)
	if err != nil {
		return models.SellerTotals{}, err
	}
	return ledger.SellerTotalsFor(sellerID, purchases), nil
}
