package repositories

import (
	"context"

	"bullion-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRepository struct {
	DB *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{DB: db}
}

const saleColumns = `id, date, customer_id, customer_name, weight, rate_per_gram,
         total_sale_amount, amount_received, amount_pending, status, linked_purchase_id,
         COALESCE(notes, '') as notes, created_at, updated_at`

func (r *SaleRepository) Create(ctx context.Context, s *models.Sale) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO sales(date, customer_id, customer_name, weight, rate_per_gram,
                           total_sale_amount, amount_received, amount_pending, status,
                           linked_purchase_id, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
         RETURNING id, created_at, updated_at`,
		s.Date, s.CustomerID, s.CustomerName, s.Weight, s.RatePerGram,
		s.TotalSaleAmount, s.AmountReceived, s.AmountPending, s.Status,
		s.LinkedPurchaseID, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SaleRepository) Get(ctx context.Context, id int) (*models.Sale, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id=$1`, id)
	return scanSale(row)
}

func (r *SaleRepository) List(ctx context.Context) ([]*models.Sale, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

func (r *SaleRepository) ListByCustomer(ctx context.Context, customerID int) ([]*models.Sale, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE customer_id=$1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSales(rows)
}

func (r *SaleRepository) Update(ctx context.Context, s *models.Sale) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE sales SET date=$1, customer_id=$2, customer_name=$3, weight=$4,
                rate_per_gram=$5, total_sale_amount=$6, amount_received=$7, amount_pending=$8,
                status=$9, linked_purchase_id=$10, notes=$11, updated_at=CURRENT_TIMESTAMP
         WHERE id=$12`,
		s.Date, s.CustomerID, s.CustomerName, s.Weight, s.RatePerGram,
		s.TotalSaleAmount, s.AmountReceived, s.AmountPending, s.Status,
		s.LinkedPurchaseID, s.Notes, s.ID)
	return err
}

func (r *SaleRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM sales WHERE id=$1`, id)
	return err
}

func scanSale(row pgx.Row) (*models.Sale, error) {
	var s models.Sale
	err := row.Scan(&s.ID, &s.Date, &s.CustomerID, &s.CustomerName, &s.Weight,
		&s.RatePerGram, &s.TotalSaleAmount, &s.AmountReceived, &s.AmountPending,
		&s.Status, &s.LinkedPurchaseID, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func scanSales(rows pgx.Rows) ([]*models.Sale, error) {
	var sales []*models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
