package repositories

import (
	"context"

	"bullion-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `id, date, customer_id, customer_name, weight, estimated_rate,
         estimated_amount, status, fulfilled_sale_id, COALESCE(notes, '') as notes,
         created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO bookings(date, customer_id, customer_name, weight, estimated_rate,
                              estimated_amount, status, fulfilled_sale_id, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		b.Date, b.CustomerID, b.CustomerName, b.Weight, b.EstimatedRate,
		b.EstimatedAmount, b.Status, b.FulfilledSaleID, b.Notes,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) Get(ctx context.Context, id int) (*models.Booking, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	return scanBooking(row)
}

func (r *BookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Booking, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE customer_id=$1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) Update(ctx context.Context, b *models.Booking) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE bookings SET date=$1, customer_id=$2, customer_name=$3, weight=$4,
                estimated_rate=$5, estimated_amount=$6, status=$7, fulfilled_sale_id=$8,
                notes=$9, updated_at=CURRENT_TIMESTAMP
         WHERE id=$10`,
		b.Date, b.CustomerID, b.CustomerName, b.Weight, b.EstimatedRate,
		b.EstimatedAmount, b.Status, b.FulfilledSaleID, b.Notes, b.ID)
	return err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int, status models.BookingStatus, fulfilledSaleID *int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE bookings SET status=$1, fulfilled_sale_id=$2, updated_at=CURRENT_TIMESTAMP
         WHERE id=$3`,
		status, fulfilledSaleID, id)
	return err
}

func (r *BookingRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	return err
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.Date, &b.CustomerID, &b.CustomerName, &b.Weight,
		&b.EstimatedRate, &b.EstimatedAmount, &b.Status, &b.FulfilledSaleID,
		&b.Notes, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func scanBookings(rows pgx.Rows) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
