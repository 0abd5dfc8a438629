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

type LedgerReadStore struct {
	pool *pgxpool.Pool
}

func NewLedgerReadStore(pool *pgxpool.Pool) *LedgerReadStore {
	return &LedgerReadStore{pool: pool}
}

func (s *LedgerReadStore) Balance(ctx context.Context, sellerID uuid.UUID) (*queries.BalanceView, error) {
	const query = `
SELECT s.id, COALESCE(SUM(t.valor), 0)
FROM sellers s
LEFT JOIN financial_transactions t ON t.seller_id = s.id
WHERE s.id = $1
GROUP BY s.id`

	var v queries.BalanceView
	err := s.pool.QueryRow(ctx, query, sellerID).Scan(&v.SellerID, &v.Saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "seller not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read seller balance", err)
	}
	return &v, nil
}

func (s *LedgerReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.TransactionView, error) {
	const query = `
SELECT id, tipo, valor, status, data_transacao
FROM financial_transactions
WHERE seller_id = $1
ORDER BY data_transacao DESC`

	rows, err := s.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list transactions", err)
	}
	defer rows.Close()

	var views []*queries.TransactionView
	for rows.Next() {
		var v queries.TransactionView
		if err := rows.Scan(&v.ID, &v.Tipo, &v.Valor, &v.Status, &v.DataTransacao); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan transaction", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read transactions", err)
	}
	return views, nil
}
