package commands

import (
	"context"
	"errors"

	"posimarket-core/internal/domain/reservation"
	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/clock"
	"posimarket-core/internal/pkg/config"
	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Reserve(ctx context.Context, productID uuid.UUID, quantity int32, holderID string) (*reservation.Reservation, error)
	Consume(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Release(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

type reservationUseCaseImpl struct {
	txm             TxManager
	reservationRepo ReservationRepository
	productRepo     ProductRepository
	clock           clock.Clock
	market          config.MarketConfig
}

func NewReservationUseCase(
	txm TxManager,
	reservationRepo ReservationRepository,
	productRepo ProductRepository,
	clk clock.Clock,
	market config.MarketConfig,
) ReservationCommands {
	return &reservationUseCaseImpl{
		txm:             txm,
		reservationRepo: reservationRepo,
		productRepo:     productRepo,
		clock:           clk,
		market:          market,
	}
}

// Reserve claims stock for a checkout in progress. The product row lock plus
// the in-transaction sum of ACTIVE claims keeps concurrent reserves for one
// product linearizable: the availability check and the insert commit together.
func (r *reservationUseCaseImpl) Reserve(
	ctx context.Context,
	productID uuid.UUID,
	quantity int32,
	holderID string,
) (*reservation.Reservation, error) {
	now := r.clock.Now()
	var created *reservation.Reservation

	err := r.txm.WithTx(ctx, func(txCtx context.Context) error {
		product, err := r.productRepo.FindForUpdate(txCtx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		active, err := r.reservationRepo.SumActive(txCtx, productID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		available := int64(product.TotalStock) - int64(product.SoldQuantity) - active
		if int64(quantity) > available {
			return errs.ErrInsufficientStock
		}

		res, err := reservation.NewReservation(productID, quantity, holderID, now, r.market.ReservationTTL)
		if err != nil {
			return err
		}
		if err := r.reservationRepo.Create(txCtx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Consume finalizes a claim into sold stock. Expiry is re-checked at the moment
// of invocation; a reservation past its deadline fails here even when the
// sweeper has not run yet.
func (r *reservationUseCaseImpl) Consume(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	now := r.clock.Now()
	var consumed *reservation.Reservation

	err := r.txm.WithTx(ctx, func(txCtx context.Context) error {
		res, err := r.findForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if err := res.Consume(now); err != nil {
			return mapTransitionErr(err)
		}
		if err := r.reservationRepo.UpdateStatus(txCtx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := r.productRepo.IncrementSold(txCtx, res.ProductID(), res.Quantity()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		consumed = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}

func (r *reservationUseCaseImpl) Release(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var released *reservation.Reservation

	err := r.txm.WithTx(ctx, func(txCtx context.Context) error {
		res, err := r.findForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if err := res.Release(); err != nil {
			return mapTransitionErr(err)
		}
		if err := r.reservationRepo.UpdateStatus(txCtx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		released = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return released, nil
}

// CleanupExpired flips every overdue ACTIVE reservation to EXPIRED in a single
// statement and returns the count. Running it again without new expirations
// returns 0; the cron invoker may retry freely.
func (r *reservationUseCaseImpl) CleanupExpired(ctx context.Context) (int64, error) {
	count, err := r.reservationRepo.ExpireDue(ctx, r.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return count, nil
}

func (r *reservationUseCaseImpl) findForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.reservationRepo.FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrExpired):
		return errs.ErrReservationExpired
	case errors.Is(err, reservation.ErrAlreadyTerminal):
		return errs.ErrReservationTerminal
	default:
		return err
	}
}
