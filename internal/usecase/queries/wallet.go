package queries

import (
	"context"

	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type LedgerReadStore interface {
	Balance(ctx context.Context, sellerID uuid.UUID) (*BalanceView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*TransactionView, error)
}

type WalletQueries interface {
	GetBalance(ctx context.Context, sellerID uuid.UUID) (*BalanceView, error)
	GetStatement(ctx context.Context, sellerID uuid.UUID) ([]*TransactionView, error)
}

type walletQueriesImpl struct {
	readStore LedgerReadStore
}

func NewWalletQueries(readStore LedgerReadStore) WalletQueries {
	return &walletQueriesImpl{readStore: readStore}
}

func (q *walletQueriesImpl) GetBalance(ctx context.Context, sellerID uuid.UUID) (*BalanceView, error) {
	view, err := q.readStore.Balance(ctx, sellerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSellerNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *walletQueriesImpl) GetStatement(ctx context.Context, sellerID uuid.UUID) ([]*TransactionView, error) {
	views, err := q.readStore.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
