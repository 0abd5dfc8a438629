package repository

import (
	"context"
	"errors"

	"posimarket-core/internal/infra"
	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// FindForUpdate locks the product row; callers serialize availability checks
// for one product on this lock.
func (r *ProductRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	const query = `
SELECT id, seller_id, name, price, total_stock, sold_quantity
FROM products
WHERE id = $1
FOR UPDATE`

	var p commands.ProductSnapshot
	err := q(ctx, r.pool).QueryRow(ctx, query, id).
		Scan(&p.ID, &p.SellerID, &p.Name, &p.Price, &p.TotalStock, &p.SoldQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "product not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get product", err)
	}
	return &p, nil
}

func (r *ProductRepository) IncrementSold(ctx context.Context, id uuid.UUID, qty int32) error {
	const stmt = `UPDATE products SET sold_quantity = sold_quantity + $2 WHERE id = $1`

	tag, err := q(ctx, r.pool).Exec(ctx, stmt, id, qty)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to increment sold quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "product not found", nil)
	}
	return nil
}
