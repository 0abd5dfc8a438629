package request

import (
	"strings"

	"posimarket-core/internal/domain/order"

	"github.com/google/uuid"
)

type SellerActionRequest struct {
	VendedorID uuid.UUID `json:"vendedorId" binding:"required"`
	PedidoID   uuid.UUID `json:"pedidoId" binding:"required"`
	Acao       string    `json:"acao" binding:"required"`
}

func (r SellerActionRequest) GetAction() order.Action {
	return order.Action(strings.TrimSpace(strings.ToLower(r.Acao)))
}
