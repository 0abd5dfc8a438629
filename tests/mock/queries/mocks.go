//go:build unit || e2e

package queriesmock

import (
	"context"

	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockReservationQueries struct {
	mock.Mock
}

func (m *MockReservationQueries) GetReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.ReservationView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderQueries struct {
	mock.Mock
}

func (m *MockOrderQueries) GetSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*queries.SellerOrderView, error) {
	args := m.Called(ctx, sellerID)
	if v, ok := args.Get(0).([]*queries.SellerOrderView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWalletQueries struct {
	mock.Mock
}

func (m *MockWalletQueries) GetBalance(ctx context.Context, sellerID uuid.UUID) (*queries.BalanceView, error) {
	args := m.Called(ctx, sellerID)
	if v, ok := args.Get(0).(*queries.BalanceView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWalletQueries) GetStatement(ctx context.Context, sellerID uuid.UUID) ([]*queries.TransactionView, error) {
	args := m.Called(ctx, sellerID)
	if v, ok := args.Get(0).([]*queries.TransactionView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
