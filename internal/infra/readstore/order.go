package readstore

import (
	"context"

	"posimarket-core/internal/infra"
	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SellerOrderReadStore struct {
	pool *pgxpool.Pool
}

func NewSellerOrderReadStore(pool *pgxpool.Pool) *SellerOrderReadStore {
	return &SellerOrderReadStore{pool: pool}
}

// ListBySeller hydrates the vendas dashboard: one row per product line, with
// status and tracking carried by the line's sub-order, newest first.
func (s *SellerOrderReadStore) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.SellerOrderView, error) {
	const query = `
SELECT
	oi.id, oi.order_id, o.numero, l.product_id, p.name,
	l.quantity, l.subtotal, oi.status, oi.codigo_rastreio,
	o.metodo_envio, o.transportadora, o.data_pedido, oi.updated_at
FROM order_item_lines l
JOIN order_items oi ON oi.id = l.order_item_id
JOIN orders o ON o.id = oi.order_id
JOIN products p ON p.id = l.product_id
WHERE oi.seller_id = $1
ORDER BY o.data_pedido DESC, oi.id, l.id`

	rows, err := s.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list seller orders", err)
	}
	defer rows.Close()

	var views []*queries.SellerOrderView
	for rows.Next() {
		var v queries.SellerOrderView
		err := rows.Scan(
			&v.ItemID, &v.OrderID, &v.Numero, &v.ProductID, &v.ProductName,
			&v.Quantity, &v.Subtotal, &v.Status, &v.CodigoRastreio,
			&v.MetodoEnvio, &v.Transportadora, &v.DataPedido, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan seller order", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read seller orders", err)
	}
	return views, nil
}
