package commands

import (
	"context"
	"encoding/json"
	"errors"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/clock"
	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type WalletCommands interface {
	Withdraw(ctx context.Context, sellerID uuid.UUID, amount float64) (*ledger.Transaction, error)
}

type walletUseCaseImpl struct {
	txm              TxManager
	ledgerRepo       LedgerRepository
	notificationRepo NotificationRepository
	clock            clock.Clock
}

func NewWalletUseCase(
	txm TxManager,
	ledgerRepo LedgerRepository,
	notificationRepo NotificationRepository,
	clk clock.Clock,
) WalletCommands {
	return &walletUseCaseImpl{
		txm:              txm,
		ledgerRepo:       ledgerRepo,
		notificationRepo: notificationRepo,
		clock:            clk,
	}
}

// Withdraw books a SAQUE against the seller's balance. The seller row lock
// serializes balance-affecting writes, so two concurrent withdrawals cannot
// both pass the balance check and drive it negative.
func (w *walletUseCaseImpl) Withdraw(ctx context.Context, sellerID uuid.UUID, amount float64) (*ledger.Transaction, error) {
	now := w.clock.Now()
	var entry *ledger.Transaction

	err := w.txm.WithTx(ctx, func(txCtx context.Context) error {
		if err := w.ledgerRepo.LockSeller(txCtx, sellerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSellerNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		balance, err := w.ledgerRepo.SumBySeller(txCtx, sellerID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		withdrawal, err := ledger.NewWithdrawal(sellerID, amount, balance, now)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrInvalidAmount):
				return errs.ErrInvalidAmount
			case errors.Is(err, ledger.ErrInsufficientBalance):
				return errs.ErrInsufficientBalance
			default:
				return err
			}
		}

		if err := w.ledgerRepo.Insert(txCtx, withdrawal); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"vendedor_id": sellerID,
			"valor":       withdrawal.Valor,
			"type":        "saque_solicitado",
		})
		if err != nil {
			return err
		}
		if err := w.notificationRepo.CreateJob(txCtx, "email", "saque_solicitado", payload, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entry = &withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
