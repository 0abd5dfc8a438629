package response

import (
	"time"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BalanceResponse struct {
	VendedorID uuid.UUID `json:"vendedorId"`
	Saldo      float64   `json:"saldo"`
}

type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	Tipo          string    `json:"tipo"`
	Valor         float64   `json:"valor"`
	Status        string    `json:"status"`
	DataTransacao time.Time `json:"dataTransacao"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		VendedorID: v.SellerID,
		Saldo:      v.Saldo,
	}
}

func FromTransactionViews(views []*queries.TransactionView) ([]*TransactionResponse, error) {
	out := make([]*TransactionResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromTransactionEntity(t *ledger.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		Tipo:          string(t.Tipo),
		Valor:         t.Valor,
		Status:        string(t.Status),
		DataTransacao: t.DataTransacao,
	}
}
