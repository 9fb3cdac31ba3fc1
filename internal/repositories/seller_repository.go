package repositories

import (
	"context"

	"bullion-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SellerRepository struct {
	DB *pgxpool.Pool
}

func NewSellerRepository(db *pgxpool.Pool) *SellerRepository {
	return &SellerRepository{DB: db}
}

func (r *SellerRepository) Create(ctx context.Context, s *models.Seller) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO sellers(name, phone, address, email)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		s.Name, s.Phone, s.Address, s.Email,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SellerRepository) Get(ctx context.Context, id int) (*models.Seller, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, address, COALESCE(email, '') as email, created_at, updated_at
         FROM sellers WHERE id=$1`, id)

	var seller models.Seller
	err := row.Scan(&seller.ID, &seller.Name, &seller.Phone, &seller.Address,
		&seller.Email, &seller.CreatedAt, &seller.UpdatedAt)
	return &seller, err
}

func (r *SellerRepository) GetByPhone(ctx context.Context, phone string) (*models.Seller, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, address, COALESCE(email, '') as email, created_at, updated_at
         FROM sellers WHERE phone=$1`, phone)

	var seller models.Seller
	err := row.Scan(&seller.ID, &seller.Name, &seller.Phone, &seller.Address,
		&seller.Email, &seller.CreatedAt, &seller.UpdatedAt)
	return &seller, err
}

func (r *SellerRepository) List(ctx context.Context) ([]*models.Seller, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, address, COALESCE(email, '') as email, created_at, updated_at
         FROM sellers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []*models.Seller
	for rows.Next() {
		var seller models.Seller
		err := rows.Scan(&seller.ID, &seller.Name, &seller.Phone, &seller.Address,
			&seller.Email, &seller.CreatedAt, &seller.UpdatedAt)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, &seller)
	}
	return sellers, rows.Err()
}

func (r *SellerRepository) Update(ctx context.Context, s *models.Seller) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE sellers SET name=$1, phone=$2, address=$3, email=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		s.Name, s.Phone, s.Address, s.Email, s.ID)
	return err
}

func (r *SellerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM sellers WHERE id=$1`, id)
	return err
}
