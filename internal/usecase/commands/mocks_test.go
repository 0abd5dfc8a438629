//go:build unit

package commands_test

import (
	"context"
	"time"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/domain/reservation"
	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// passthroughTxManager runs the callback without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) FindForUpdate(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*commands.ProductSnapshot); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *productRepoMock) IncrementSold(ctx context.Context, id uuid.UUID, qty int32) error {
	return m.Called(ctx, id, qty).Error(0)
}

type reservationRepoMock struct {
	mock.Mock
}

func (m *reservationRepoMock) Create(ctx context.Context, res *reservation.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *reservationRepoMock) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*reservation.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *reservationRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *reservationRepoMock) SumActive(ctx context.Context, productID uuid.UUID, now time.Time) (int64, error) {
	args := m.Called(ctx, productID, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *reservationRepoMock) ListActiveByHolderForUpdate(ctx context.Context, holderID string) ([]*reservation.Reservation, error) {
	args := m.Called(ctx, holderID)
	if rs, ok := args.Get(0).([]*reservation.Reservation); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *reservationRepoMock) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type orderRepoMock struct {
	mock.Mock
}

func (m *orderRepoMock) CreateOrder(ctx context.Context, rec commands.NewOrderRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *orderRepoMock) CreateSubOrder(ctx context.Context, item *order.SubOrder, lines []commands.SubOrderLine) error {
	return m.Called(ctx, item, lines).Error(0)
}

func (m *orderRepoMock) FindOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*commands.OrderSnapshot, error) {
	args := m.Called(ctx, orderID)
	if o, ok := args.Get(0).(*commands.OrderSnapshot); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *orderRepoMock) FindSubOrderForUpdate(ctx context.Context, orderID, sellerID uuid.UUID) (*order.SubOrder, error) {
	args := m.Called(ctx, orderID, sellerID)
	if item, ok := args.Get(0).(*order.SubOrder); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *orderRepoMock) UpdateSubOrder(ctx context.Context, item *order.SubOrder) error {
	return m.Called(ctx, item).Error(0)
}

func (m *orderRepoMock) ListItemStatuses(ctx context.Context, orderID uuid.UUID) ([]order.Status, error) {
	args := m.Called(ctx, orderID)
	if sts, ok := args.Get(0).([]order.Status); ok {
		return sts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *orderRepoMock) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status order.Status) error {
	return m.Called(ctx, orderID, status).Error(0)
}

type ledgerRepoMock struct {
	mock.Mock
}

func (m *ledgerRepoMock) LockSeller(ctx context.Context, sellerID uuid.UUID) error {
	return m.Called(ctx, sellerID).Error(0)
}

func (m *ledgerRepoMock) SaleExistsForItem(ctx context.Context, orderItemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, orderItemID)
	return args.Bool(0), args.Error(1)
}

func (m *ledgerRepoMock) Insert(ctx context.Context, entry ledger.Transaction) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *ledgerRepoMock) SumBySeller(ctx context.Context, sellerID uuid.UUID) (float64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(float64), args.Error(1)
}

type notificationRepoMock struct {
	mock.Mock
}

func (m *notificationRepoMock) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	return m.Called(ctx, kind, topic, payload, runAt).Error(0)
}
