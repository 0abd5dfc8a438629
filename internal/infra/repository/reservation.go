package repository

import (
	"context"
	"errors"
	"time"

	"posimarket-core/internal/domain/reservation"
	"posimarket-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const stmt = `
INSERT INTO stock_reservations (id, product_id, quantity, holder_id, status, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q(ctx, r.pool).Exec(ctx, stmt,
		res.ID(),
		res.ProductID(),
		res.Quantity(),
		res.HolderID(),
		res.Status().String(),
		res.CreatedAt(),
		res.ExpiresAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "reservation already exists", err)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "unknown product", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
SELECT id, product_id, quantity, holder_id, status, created_at, expires_at
FROM stock_reservations
WHERE id = $1
FOR UPDATE`

	row := q(ctx, r.pool).QueryRow(ctx, query, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const stmt = `UPDATE stock_reservations SET status = $2 WHERE id = $1`

	tag, err := q(ctx, r.pool).Exec(ctx, stmt, id, status.String())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}

// SumActive totals the live claims against a product. Overdue-but-unswept rows
// do not count; they already free capacity before the sweeper reaches them.
func (r *ReservationRepository) SumActive(ctx context.Context, productID uuid.UUID, now time.Time) (int64, error) {
	const query = `
SELECT COALESCE(SUM(quantity), 0)
FROM stock_reservations
WHERE product_id = $1 AND status = 'ACTIVE' AND expires_at > $2`

	var total int64
	if err := q(ctx, r.pool).QueryRow(ctx, query, productID, now).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum active reservations", err)
	}
	return total, nil
}

func (r *ReservationRepository) ListActiveByHolderForUpdate(ctx context.Context, holderID string) ([]*reservation.Reservation, error) {
	const query = `
SELECT id, product_id, quantity, holder_id, status, created_at, expires_at
FROM stock_reservations
WHERE holder_id = $1 AND status = 'ACTIVE'
ORDER BY created_at
FOR UPDATE`

	rows, err := q(ctx, r.pool).Query(ctx, query, holderID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list holder reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read holder reservations", err)
	}
	return result, nil
}

// ExpireDue is the sweep: one statement, safe to re-run.
func (r *ReservationRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	const stmt = `
UPDATE stock_reservations
SET status = 'EXPIRED'
WHERE status = 'ACTIVE' AND expires_at < $1`

	tag, err := q(ctx, r.pool).Exec(ctx, stmt, now)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to expire reservations", err)
	}
	return tag.RowsAffected(), nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, productID        uuid.UUID
		quantity             int32
		holderID, status     string
		createdAt, expiresAt time.Time
	)
	if err := row.Scan(&id, &productID, &quantity, &holderID, &status, &createdAt, &expiresAt); err != nil {
		return nil, err
	}
	return reservation.Reconstruct(id, productID, quantity, holderID, reservation.Status(status), createdAt, expiresAt), nil
}
