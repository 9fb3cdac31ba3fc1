package services

import (
	"context"
	"fmt"

	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
	"bullion-backend/internal/timeutil"
)

type BookingService struct {
	Repo         *repositories.BookingRepository
	CustomerRepo *repositories.CustomerRepository
	notifier     ChangeNotifier
}

func NewBookingService(repo *repositories.BookingRepository, customerRepo *repositories.CustomerRepository, notifier ChangeNotifier) *BookingService {
	return &BookingService{Repo: repo, CustomerRepo: customerRepo, notifier: orNoop(notifier)}
}

func (s *BookingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	date, err := timeutil.ParseInIST(timeutil.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Date:            date,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Weight:          req.Weight,
		EstimatedRate:   req.EstimatedRate,
		EstimatedAmount: req.Weight * req.EstimatedRate,
		Status:          models.BookingStatusPending,
		Notes:           req.Notes,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("bookings")
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	return s.Repo.Get(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.Repo.List(ctx)
}

func (s *BookingService) ListBookingsByCustomer(ctx context.Context, customerID int) ([]*models.Booking, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int, req *models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.Repo.Get(ctx, id)
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

	booking.Date = date
	booking.CustomerID = customer.ID
	booking.CustomerName = customer.Name
	booking.Weight = req.Weight
	booking.EstimatedRate = req.EstimatedRate
	booking.EstimatedAmount = req.Weight * req.EstimatedRate
	booking.Notes = req.Notes

	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("bookings")
	return booking, nil
}

// UpdateStatus marks a booking fulfilled or cancelled. The fulfilled sale
// link is only stored when fulfilling.
func (s *BookingService) UpdateStatus(ctx context.Context, id int, req *models.UpdateBookingStatusRequest) (*models.Booking, error) {
	if req.Status != models.BookingStatusFulfilled && req.Status != models.BookingStatusCancelled {
		return nil, fmt.Errorf("invalid booking status %q", req.Status)
	}
	fulfilledSaleID := req.FulfilledSaleID
	if req.Status != models.BookingStatusFulfilled {
		fulfilledSaleID = nil
	}
	if err := s.Repo.UpdateStatus(ctx, id, req.Status, fulfilledSaleID); err != nil {
		return nil, err
	}
	s.notifier.CollectionChanged("bookings")
	return s.Repo.Get(ctx, id)
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.CollectionChanged("bookings")
	return nil
}
