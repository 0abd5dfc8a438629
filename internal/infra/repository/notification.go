package repository

import (
	"context"
	"time"

	"posimarket-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository appends delivery jobs in the same transaction as the
// state change they announce; a separate worker drains the table.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const stmt = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, created_at)
VALUES ($1, $2, $3, $4, $5, now())`

	_, err := q(ctx, r.pool).Exec(ctx, stmt, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create notification job", err)
	}
	return nil
}
