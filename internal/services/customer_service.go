package services

import (
	"context"

	"bullion-backend/internal/ledger"
	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
)

type CustomerService struct {
	Repo        *repositories.CustomerRepository
	SaleRepo    *repositories.SaleRepository
	BookingRepo *repositories.BookingRepository
	notifier    ChangeNotifier
}

func NewCustomerService(repo *repositories.CustomerRepository, saleRepo *repositories.SaleRepository, bookingRepo *repositories.BookingRepository, notifier ChangeNotifier) *CustomerService {
	return &CustomerService{Repo: repo, SaleRepo: saleRepo, BookingRepo: bookingRepo, notifier: orNoop(notifier)}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("customers")
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) SearchByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.Repo.GetByPhone(ctx, phone)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.Email = req.Email
	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("customers")
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.CollectionChanged("customers")
	return nil
}

// GetTotals recomputes the customer's aggregate figures from the full sale
// and booking snapshots.
func (s *CustomerService) GetTotals(ctx context.Context, customerID int) (models.CustomerTotals, error) {
	sales, err := s.SaleRepo.List(ctx)
	if err != nil {
		return models.CustomerTotals{}, err
	}
	bookings, err := s.BookingRepo.List(ctx)
	if err != nil {
		return models.CustomerTotals{}, err
	}
	return ledger.CustomerTotalsFor(customerID, sales, bookings), nil
}
