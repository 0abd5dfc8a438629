//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/clock"
	"posimarket-core/internal/pkg/errs"
	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	uc               commands.OrderCommands
	orderRepo        *orderRepoMock
	ledgerRepo       *ledgerRepoMock
	notificationRepo *notificationRepoMock
	orderID          uuid.UUID
	sellerID         uuid.UUID
	now              time.Time
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orderRepo:        &orderRepoMock{},
		ledgerRepo:       &ledgerRepoMock{},
		notificationRepo: &notificationRepoMock{},
		orderID:          uuid.New(),
		sellerID:         uuid.New(),
		now:              time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
	}
	f.uc = commands.NewOrderUseCase(
		passthroughTxManager{},
		f.orderRepo,
		f.ledgerRepo,
		f.notificationRepo,
		clock.NewFixed(f.now),
		testMarket,
	)
	return f
}

func (f *orderFixture) snapshot(status order.Status) *commands.OrderSnapshot {
	return &commands.OrderSnapshot{
		ID:             f.orderID,
		BuyerID:        uuid.New(),
		Numero:         "PM-20250310-AB12CD34",
		Status:         status,
		Transportadora: "Correios",
	}
}

func (f *orderFixture) item(status order.Status, tracking *string) *order.SubOrder {
	return order.ReconstructSubOrder(
		uuid.New(), f.orderID, f.sellerID,
		2, 100.00, status, tracking, f.now.Add(-time.Hour),
	)
}

func TestOrderUseCase_ApplyAction(t *testing.T) {
	ctx := context.Background()

	t.Run("mark processing", func(t *testing.T) {
		f := newOrderFixture(t)
		item := f.item(order.StatusPending, nil)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).Return(f.snapshot(order.StatusPending), nil)
		f.orderRepo.On("FindSubOrderForUpdate", mock.Anything, f.orderID, f.sellerID).Return(item, nil)
		f.orderRepo.On("UpdateSubOrder", mock.Anything, item).Return(nil)
		f.orderRepo.On("ListItemStatuses", mock.Anything, f.orderID).Return([]order.Status{order.StatusProcessing}, nil)
		f.orderRepo.On("UpdateOrderStatus", mock.Anything, f.orderID, order.StatusProcessing).Return(nil)
		f.notificationRepo.On("CreateJob", mock.Anything, "email", "pedido_status_alterado", mock.Anything, f.now).Return(nil)

		result, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionMarkProcessing)
		require.NoError(t, err)
		assert.Equal(t, order.StatusProcessing, result.Item.Status())
		assert.Equal(t, order.StatusProcessing, result.OrderStatus)
		f.ledgerRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("confirm shipment settles exactly one sale", func(t *testing.T) {
		f := newOrderFixture(t)
		item := f.item(order.StatusProcessing, nil)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).Return(f.snapshot(order.StatusProcessing), nil)
		f.orderRepo.On("FindSubOrderForUpdate", mock.Anything, f.orderID, f.sellerID).Return(item, nil)
		f.orderRepo.On("UpdateSubOrder", mock.Anything, item).Return(nil)
		f.ledgerRepo.On("SaleExistsForItem", mock.Anything, item.ID()).Return(false, nil)
		f.ledgerRepo.On("LockSeller", mock.Anything, f.sellerID).Return(nil)
		f.ledgerRepo.On("Insert", mock.Anything, mock.MatchedBy(func(tx ledger.Transaction) bool {
			return tx.Tipo == ledger.TipoVenda && tx.Valor == 95.00 && *tx.OrderItemID == item.ID()
		})).Return(nil).Once()
		f.orderRepo.On("ListItemStatuses", mock.Anything, f.orderID).Return([]order.Status{order.StatusShipped}, nil)
		f.orderRepo.On("UpdateOrderStatus", mock.Anything, f.orderID, order.StatusShipped).Return(nil)
		f.notificationRepo.On("CreateJob", mock.Anything, "email", "pedido_status_alterado", mock.Anything, f.now).Return(nil)

		result, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionConfirmShip)
		require.NoError(t, err)
		require.NotNil(t, result.Item.TrackingCode())
		assert.Equal(t, order.TrackingCode(f.now, "Correios"), *result.Item.TrackingCode())
		f.ledgerRepo.AssertExpectations(t)
	})

	t.Run("replayed shipment neither transitions nor settles again", func(t *testing.T) {
		f := newOrderFixture(t)
		code := order.TrackingCode(f.now.Add(-time.Hour), "Correios")
		item := f.item(order.StatusShipped, &code)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).Return(f.snapshot(order.StatusShipped), nil)
		f.orderRepo.On("FindSubOrderForUpdate", mock.Anything, f.orderID, f.sellerID).Return(item, nil)

		_, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionConfirmShip)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		f.ledgerRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("sale already on the ledger is not booked twice", func(t *testing.T) {
		f := newOrderFixture(t)
		item := f.item(order.StatusProcessing, nil)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).Return(f.snapshot(order.StatusProcessing), nil)
		f.orderRepo.On("FindSubOrderForUpdate", mock.Anything, f.orderID, f.sellerID).Return(item, nil)
		f.orderRepo.On("UpdateSubOrder", mock.Anything, item).Return(nil)
		f.ledgerRepo.On("SaleExistsForItem", mock.Anything, item.ID()).Return(true, nil)
		f.orderRepo.On("ListItemStatuses", mock.Anything, f.orderID).Return([]order.Status{order.StatusShipped}, nil)
		f.orderRepo.On("UpdateOrderStatus", mock.Anything, f.orderID, order.StatusShipped).Return(nil)
		f.notificationRepo.On("CreateJob", mock.Anything, "email", "pedido_status_alterado", mock.Anything, f.now).Return(nil)

		_, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionConfirmShip)
		require.NoError(t, err)
		f.ledgerRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("unknown action fails before touching the database", func(t *testing.T) {
		f := newOrderFixture(t)

		_, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.Action("enviar"))
		assert.ErrorIs(t, err, errs.ErrInvalidAction)
		f.orderRepo.AssertNotCalled(t, "FindOrderForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("order not found", func(t *testing.T) {
		f := newOrderFixture(t)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", nil))

		_, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionMarkProcessing)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("order belongs to another seller", func(t *testing.T) {
		f := newOrderFixture(t)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).Return(f.snapshot(order.StatusPending), nil)
		f.orderRepo.On("FindSubOrderForUpdate", mock.Anything, f.orderID, f.sellerID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "order item not found", nil))

		_, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionMarkProcessing)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
	})

	t.Run("aggregate untouched when roll-up matches", func(t *testing.T) {
		f := newOrderFixture(t)
		item := f.item(order.StatusPending, nil)

		f.orderRepo.On("FindOrderForUpdate", mock.Anything, f.orderID).Return(f.snapshot(order.StatusPending), nil)
		f.orderRepo.On("FindSubOrderForUpdate", mock.Anything, f.orderID, f.sellerID).Return(item, nil)
		f.orderRepo.On("UpdateSubOrder", mock.Anything, item).Return(nil)
		// a second pending item keeps the aggregate at PENDENTE
		f.orderRepo.On("ListItemStatuses", mock.Anything, f.orderID).Return([]order.Status{order.StatusProcessing, order.StatusPending}, nil)
		f.notificationRepo.On("CreateJob", mock.Anything, "email", "pedido_status_alterado", mock.Anything, f.now).Return(nil)

		result, err := f.uc.ApplyAction(ctx, f.orderID, f.sellerID, order.ActionMarkProcessing)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, result.OrderStatus)
		f.orderRepo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
