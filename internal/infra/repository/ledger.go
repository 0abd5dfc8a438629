package repository

import (
	"context"
	"errors"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// LockSeller takes the seller row lock that serializes balance-affecting
// writes for one seller.
func (r *LedgerRepository) LockSeller(ctx context.Context, sellerID uuid.UUID) error {
	const query = `SELECT id FROM sellers WHERE id = $1 FOR UPDATE`

	var id uuid.UUID
	if err := q(ctx, r.pool).QueryRow(ctx, query, sellerID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr(infra.KindNotFound, "seller not found", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to lock seller", err)
	}
	return nil
}

func (r *LedgerRepository) SaleExistsForItem(ctx context.Context, orderItemID uuid.UUID) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM financial_transactions
	WHERE order_item_id = $1 AND tipo = 'VENDA'
)`

	var exists bool
	if err := q(ctx, r.pool).QueryRow(ctx, query, orderItemID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check existing sale", err)
	}
	return exists, nil
}

func (r *LedgerRepository) Insert(ctx context.Context, entry ledger.Transaction) error {
	const stmt = `
INSERT INTO financial_transactions (id, seller_id, tipo, valor, status, order_item_id, valor_bruto, comissao, data_transacao)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := q(ctx, r.pool).Exec(ctx, stmt,
		entry.ID,
		entry.SellerID,
		entry.Tipo.String(),
		entry.Valor,
		entry.Status.String(),
		entry.OrderItemID,
		entry.ValorBruto,
		entry.Comissao,
		entry.DataTransacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "sale already recorded for order item", err)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "unknown seller or order item", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to insert transaction", err)
	}
	return nil
}

func (r *LedgerRepository) SumBySeller(ctx context.Context, sellerID uuid.UUID) (float64, error) {
	const query = `
SELECT COALESCE(SUM(valor), 0)
FROM financial_transactions
WHERE seller_id = $1`

	var total float64
	if err := q(ctx, r.pool).QueryRow(ctx, query, sellerID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sum seller balance", err)
	}
	return total, nil
}
