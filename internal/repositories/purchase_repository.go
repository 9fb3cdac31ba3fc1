package repositories

import (
	"context"

	"bullion-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	DB *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

const purchaseColumns = `id, date, seller_id, seller_name, quantity, weight, rate_per_gram,
         total_cost, amount_paid, amount_due, status, COALESCE(notes, '') as notes, created_at, updated_at`

func (r *PurchaseRepository) Create(ctx context.Context, p *models.Purchase) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO purchases(date, seller_id, seller_name, quantity, weight, rate_per_gram,
                               total_cost, amount_paid, amount_due, status, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
         RETURNING id, created_at, updated_at`,
		p.Date, p.SellerID, p.SellerName, p.Quantity, p.Weight, p.RatePerGram,
		p.TotalCost, p.AmountPaid, p.AmountDue, p.Status, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PurchaseRepository) Get(ctx context.Context, id int) (*models.Purchase, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE id=$1`, id)
	return scanPurchase(row)
}

func (r *PurchaseRepository) List(ctx context.Context) ([]*models.Purchase, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPurchases(rows)
}

func (r *PurchaseRepository) ListBySeller(ctx context.Context, sellerID int) ([]*models.Purchase, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE seller_id=$1 ORDER BY created_at DESC`,
		sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPurchases(rows)
}

func (r *PurchaseRepository) Update(ctx context.Context, p *models.Purchase) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE purchases SET date=$1, seller_id=$2, seller_name=$3, quantity=$4, weight=$5,
                rate_per_gram=$6, total_cost=$7, amount_paid=$8, amount_due=$9, status=$10,
                notes=$11, updated_at=CURRENT_TIMESTAMP
         WHERE id=$12`,
		p.Date, p.SellerID, p.SellerName, p.Quantity, p.Weight, p.RatePerGram,
		p.TotalCost, p.AmountPaid, p.AmountDue, p.Status, p.Notes, p.ID)
	return err
}

func (r *PurchaseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM purchases WHERE id=$1`, id)
	return err
}

func scanPurchase(row pgx.Row) (*models.Purchase, error) {
	var p models.Purchase
	err := row.Scan(&p.ID, &p.Date, &p.SellerID, &p.SellerName, &p.Quantity, &p.Weight,
		&p.RatePerGram, &p.TotalCost, &p.AmountPaid, &p.AmountDue, &p.Status, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func scanPurchases(rows pgx.Rows) ([]*models.Purchase, error) {
	var purchases []*models.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
