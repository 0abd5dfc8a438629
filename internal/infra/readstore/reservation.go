package readstore

import (
	"context"
	"errors"

	"posimarket-core/internal/infra"
	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (s *ReservationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
SELECT id, product_id, quantity, holder_id, status, created_at, expires_at
FROM stock_reservations
WHERE id = $1`

	var v queries.ReservationView
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.ProductID, &v.Quantity, &v.HolderID, &v.Status, &v.CreatedAt, &v.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read reservation", err)
	}
	return &v, nil
}
