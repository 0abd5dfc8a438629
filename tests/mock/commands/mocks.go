//go:build unit || e2e

package commandsmock

import (
	"context"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/domain/reservation"
	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockReservationCommands struct {
	mock.Mock
}

func (m *MockReservationCommands) Reserve(ctx context.Context, productID uuid.UUID, quantity int32, holderID string) (*reservation.Reservation, error) {
	args := m.Called(ctx, productID, quantity, holderID)
	if r, ok := args.Get(0).(*reservation.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReservationCommands) Consume(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*reservation.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReservationCommands) Release(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*reservation.Reservation); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReservationCommands) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCheckoutCommands struct {
	mock.Mock
}

func (m *MockCheckoutCommands) Complete(ctx context.Context, in commands.CompleteCheckoutInput) (*commands.CheckoutResult, error) {
	args := m.Called(ctx, in)
	if r, ok := args.Get(0).(*commands.CheckoutResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderCommands struct {
	mock.Mock
}

func (m *MockOrderCommands) ApplyAction(ctx context.Context, orderID, sellerID uuid.UUID, action order.Action) (*commands.ApplyActionResult, error) {
	args := m.Called(ctx, orderID, sellerID, action)
	if r, ok := args.Get(0).(*commands.ApplyActionResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWalletCommands struct {
	mock.Mock
}

func (m *MockWalletCommands) Withdraw(ctx context.Context, sellerID uuid.UUID, amount float64) (*ledger.Transaction, error) {
	args := m.Called(ctx, sellerID, amount)
	if r, ok := args.Get(0).(*ledger.Transaction); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
