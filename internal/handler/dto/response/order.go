package response

import (
	"time"

	"posimarket-core/internal/usecase/commands"
	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubOrderResponse struct {
	PedidoID       uuid.UUID `json:"pedidoId"`
	ItemID         uuid.UUID `json:"itemId"`
	VendedorID     uuid.UUID `json:"vendedorId"`
	Numero         string    `json:"numero"`
	Status         string    `json:"status"`
	CodigoRastreio *string   `json:"codigoRastreio,omitempty"`
	StatusPedido   string    `json:"statusPedido"`
	AtualizadoEm   time.Time `json:"atualizadoEm"`
}

type SellerOrderResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	OrderID        uuid.UUID `json:"pedidoId"`
	Numero         string    `json:"numero"`
	ProductID      uuid.UUID `json:"produtoId"`
	ProductName    string    `json:"produtoNome"`
	Quantity       int32     `json:"quantidade"`
	Subtotal       float64   `json:"subtotal"`
	Status         string    `json:"status"`
	CodigoRastreio *string   `json:"codigoRastreio,omitempty"`
	MetodoEnvio    string    `json:"metodoEnvio"`
	Transportadora string    `json:"transportadora"`
	DataPedido     time.Time `json:"dataPedido"`
	UpdatedAt      time.Time `json:"atualizadoEm"`
}

func FromApplyActionResult(r *commands.ApplyActionResult) *SubOrderResponse {
	return &SubOrderResponse{
		PedidoID:       r.Item.OrderID(),
		ItemID:         r.Item.ID(),
		VendedorID:     r.Item.SellerID(),
		Numero:         r.OrderNumero,
		Status:         string(r.Item.Status()),
		CodigoRastreio: r.Item.TrackingCode(),
		StatusPedido:   string(r.OrderStatus),
		AtualizadoEm:   r.Item.UpdatedAt(),
	}
}

func FromSellerOrderViews(views []*queries.SellerOrderView) ([]*SellerOrderResponse, error) {
	out := make([]*SellerOrderResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}
