package repository

import (
	"context"
	"errors"
	"time"

	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/infra"
	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, rec commands.NewOrderRecord) error {
	const stmt = `
INSERT INTO orders (id, buyer_id, numero, status, metodo_envio, transportadora, endereco_entrega, data_pedido)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q(ctx, r.pool).Exec(ctx, stmt,
		rec.ID,
		rec.BuyerID,
		rec.Numero,
		rec.Status.String(),
		rec.MetodoEnvio,
		rec.Transportadora,
		rec.EnderecoEntrega,
		rec.DataPedido,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "order numero already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) CreateSubOrder(ctx context.Context, item *order.SubOrder, lines []commands.SubOrderLine) error {
	const itemStmt = `
INSERT INTO order_items (id, order_id, seller_id, quantity, subtotal, status, codigo_rastreio, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q(ctx, r.pool).Exec(ctx, itemStmt,
		item.ID(),
		item.OrderID(),
		item.SellerID(),
		item.Quantity(),
		item.Subtotal(),
		item.Status().String(),
		item.TrackingCode(),
		item.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "seller already has an item on this order", err)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "unknown order or seller", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create order item", err)
	}

	const lineStmt = `
INSERT INTO order_item_lines (id, order_item_id, product_id, quantity, subtotal)
VALUES ($1, $2, $3, $4, $5)`

	for _, line := range lines {
		_, err := q(ctx, r.pool).Exec(ctx, lineStmt,
			line.ID,
			item.ID(),
			line.ProductID,
			line.Quantity,
			line.Subtotal,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return infra.WrapRepoErr(infra.KindForeignKeyViolated, "unknown product", err)
			}
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to create order item line", err)
		}
	}
	return nil
}

// FindOrderForUpdate locks the aggregate row first; sub-order locks follow it,
// which keeps concurrent seller actions on one order lock-ordered.
func (r *OrderRepository) FindOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*commands.OrderSnapshot, error) {
	const query = `
SELECT id, buyer_id, numero, status, transportadora
FROM orders
WHERE id = $1
FOR UPDATE`

	var (
		snap   commands.OrderSnapshot
		status string
	)
	err := q(ctx, r.pool).QueryRow(ctx, query, orderID).
		Scan(&snap.ID, &snap.BuyerID, &snap.Numero, &status, &snap.Transportadora)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get order", err)
	}
	snap.Status = order.Status(status)
	return &snap, nil
}

// FindSubOrderForUpdate resolves the seller's single item on an order; the
// unique index on (order_id, seller_id) guarantees the row is unambiguous.
func (r *OrderRepository) FindSubOrderForUpdate(ctx context.Context, orderID, sellerID uuid.UUID) (*order.SubOrder, error) {
	const query = `
SELECT id, order_id, seller_id, quantity, subtotal, status, codigo_rastreio, updated_at
FROM order_items
WHERE order_id = $1 AND seller_id = $2
FOR UPDATE`

	var (
		id, oID, sID uuid.UUID
		quantity     int32
		subtotal     float64
		status       string
		trackingCode *string
		updatedAt    time.Time
	)
	err := q(ctx, r.pool).QueryRow(ctx, query, orderID, sellerID).
		Scan(&id, &oID, &sID, &quantity, &subtotal, &status, &trackingCode, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order item not found for seller", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get order item", err)
	}
	return order.ReconstructSubOrder(id, oID, sID, quantity, subtotal, order.Status(status), trackingCode, updatedAt), nil
}

func (r *OrderRepository) UpdateSubOrder(ctx context.Context, item *order.SubOrder) error {
	const stmt = `
UPDATE order_items
SET status = $2, codigo_rastreio = $3, updated_at = $4
WHERE id = $1`

	tag, err := q(ctx, r.pool).Exec(ctx, stmt,
		item.ID(),
		item.Status().String(),
		item.TrackingCode(),
		item.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "tracking code already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update order item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order item not found", nil)
	}
	return nil
}

func (r *OrderRepository) ListItemStatuses(ctx context.Context, orderID uuid.UUID) ([]order.Status, error) {
	const query = `SELECT status FROM order_items WHERE order_id = $1`

	rows, err := q(ctx, r.pool).Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list item statuses", err)
	}
	defer rows.Close()

	var statuses []order.Status
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan item status", err)
		}
		statuses = append(statuses, order.Status(s))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read item statuses", err)
	}
	return statuses, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status order.Status) error {
	const stmt = `UPDATE orders SET status = $2 WHERE id = $1`

	tag, err := q(ctx, r.pool).Exec(ctx, stmt, orderID, status.String())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}
