package queries

import (
	"context"

	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationQueries interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
