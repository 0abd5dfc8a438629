package response

import (
	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	PedidoID uuid.UUID `json:"pedidoId"`
	Numero   string    `json:"numero"`
	Itens    int       `json:"itens"`
	Total    float64   `json:"total"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		PedidoID: r.OrderID,
		Numero:   r.Numero,
		Itens:    r.ItemCount,
		Total:    r.Total,
	}
}
