package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance for withdrawal")
)

// Transaction is one append-only ledger entry. A seller's available balance is
// the sum of Valor over all entries.
type Transaction struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	Tipo          Tipo
	Valor         float64
	Status        TransactionStatus
	OrderItemID   *uuid.UUID
	ValorBruto    float64
	Comissao      float64
	DataTransacao time.Time
}

// NewSale credits the seller with the net of a shipped sub-order. Exactly one
// sale entry may reference a given sub-order.
func NewSale(sellerID, orderItemID uuid.UUID, subtotal, commissionRate float64, now time.Time) Transaction {
	s := ComputeSettlement(subtotal, commissionRate)
	itemID := orderItemID
	return Transaction{
		ID:            uuid.New(),
		SellerID:      sellerID,
		Tipo:          TipoVenda,
		Valor:         s.Net,
		Status:        StatusConcluido,
		OrderItemID:   &itemID,
		ValorBruto:    s.Gross,
		Comissao:      s.Commission,
		DataTransacao: now,
	}
}

// NewWithdrawal debits the seller's balance. It starts PROCESSANDO and is
// completed by external settlement.
func NewWithdrawal(sellerID uuid.UUID, amount, balance float64, now time.Time) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if amount > balance {
		return Transaction{}, ErrInsufficientBalance
	}
	return Transaction{
		ID:            uuid.New(),
		SellerID:      sellerID,
		Tipo:          TipoSaque,
		Valor:         -Round2(amount),
		Status:        StatusProcessando,
		DataTransacao: now,
	}, nil
}
