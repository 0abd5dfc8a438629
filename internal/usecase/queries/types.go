package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models hydrated straight from the read store; JSON tags define the
// public response shape.
type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"produtoId"`
	Quantity  int32     `json:"quantidade"`
	HolderID  string    `json:"holderId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SellerOrderView is one row of the seller's vendas dashboard: the sub-order
// joined with its aggregate order and product.
type SellerOrderView struct {
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

type TransactionView struct {
	ID            uuid.UUID `json:"id"`
	Tipo          string    `json:"tipo"`
	Valor         float64   `json:"valor"`
	Status        string    `json:"status"`
	DataTransacao time.Time `json:"dataTransacao"`
}

type BalanceView struct {
	SellerID uuid.UUID `json:"vendedorId"`
	Saldo    float64   `json:"saldo"`
}
