package queries

import (
	"context"

	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type SellerOrderReadStore interface {
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerOrderView, error)
}

type OrderQueries interface {
	GetSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*SellerOrderView, error)
}

type orderQueriesImpl struct {
	readStore SellerOrderReadStore
}

func NewOrderQueries(readStore SellerOrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetSellerOrders(ctx context.Context, sellerID uuid.UUID) ([]*SellerOrderView, error) {
	views, err := q.readStore.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
