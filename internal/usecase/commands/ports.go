package commands

import (
	"context"
	"time"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/domain/reservation"

	"github.com/google/uuid"
)

// TxManager scopes a set of repository calls to one database transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Write-side snapshots keep the command layer off the read-side view types.
type ProductSnapshot struct {
	ID           uuid.UUID
	SellerID     uuid.UUID
	Name         string
	Price        float64
	TotalStock   int32
	SoldQuantity int32
}

type OrderSnapshot struct {
	ID             uuid.UUID
	BuyerID        uuid.UUID
	Numero         string
	Status         order.Status
	Transportadora string
}

// SubOrderLine is one product of a seller's portion. The sub-order is the
// unit sellers act on; lines only carry the product breakdown for the vendas
// view.
type SubOrderLine struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int32
	Subtotal  float64
}

// NewOrderRecord is the aggregate row written at checkout.
type NewOrderRecord struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	Numero          string
	Status          order.Status
	MetodoEnvio     string
	Transportadora  string
	EnderecoEntrega string
	DataPedido      time.Time
}

type ProductRepository interface {
	FindForUpdate(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	IncrementSold(ctx context.Context, id uuid.UUID, qty int32) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	SumActive(ctx context.Context, productID uuid.UUID, now time.Time) (int64, error)
	ListActiveByHolderForUpdate(ctx context.Context, holderID string) ([]*reservation.Reservation, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, rec NewOrderRecord) error
	CreateSubOrder(ctx context.Context, item *order.SubOrder, lines []SubOrderLine) error
	FindOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*OrderSnapshot, error)
	FindSubOrderForUpdate(ctx context.Context, orderID, sellerID uuid.UUID) (*order.SubOrder, error)
	UpdateSubOrder(ctx context.Context, item *order.SubOrder) error
	ListItemStatuses(ctx context.Context, orderID uuid.UUID) ([]order.Status, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status order.Status) error
}

type LedgerRepository interface {
	LockSeller(ctx context.Context, sellerID uuid.UUID) error
	SaleExistsForItem(ctx context.Context, orderItemID uuid.UUID) (bool, error)
	Insert(ctx context.Context, entry ledger.Transaction) error
	SumBySeller(ctx context.Context, sellerID uuid.UUID) (float64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
