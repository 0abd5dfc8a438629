package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/clock"
	"posimarket-core/internal/pkg/config"
	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// ApplyActionResult carries the transitioned sub-order plus the aggregate
// status derived from all sub-orders of the same order.
type ApplyActionResult struct {
	Item        *order.SubOrder
	OrderNumero string
	OrderStatus order.Status
}

type OrderCommands interface {
	ApplyAction(ctx context.Context, orderID, sellerID uuid.UUID, action order.Action) (*ApplyActionResult, error)
}

type orderUseCaseImpl struct {
	txm              TxManager
	orderRepo        OrderRepository
	ledgerRepo       LedgerRepository
	notificationRepo NotificationRepository
	clock            clock.Clock
	market           config.MarketConfig
}

func NewOrderUseCase(
	txm TxManager,
	orderRepo OrderRepository,
	ledgerRepo LedgerRepository,
	notificationRepo NotificationRepository,
	clk clock.Clock,
	market config.MarketConfig,
) OrderCommands {
	return &orderUseCaseImpl{
		txm:              txm,
		orderRepo:        orderRepo,
		ledgerRepo:       ledgerRepo,
		notificationRepo: notificationRepo,
		clock:            clk,
		market:           market,
	}
}

// ApplyAction runs one seller action through the status machine. The order row
// is locked before the sub-order row, which serializes concurrent seller
// actions and the aggregate roll-up on one order. The seller's VENDA is
// settled on the first transition into ENVIADO and guarded so a replayed
// request never books it twice.
func (o *orderUseCaseImpl) ApplyAction(
	ctx context.Context,
	orderID, sellerID uuid.UUID,
	action order.Action,
) (*ApplyActionResult, error) {
	if _, ok := action.TargetStatus(); !ok {
		return nil, errs.ErrInvalidAction
	}

	now := o.clock.Now()
	var result *ApplyActionResult

	err := o.txm.WithTx(ctx, func(txCtx context.Context) error {
		ord, err := o.orderRepo.FindOrderForUpdate(txCtx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		item, err := o.orderRepo.FindSubOrderForUpdate(txCtx, orderID, sellerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrNotOwner
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		applied, err := item.Apply(action, ord.Transportadora, now)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrInvalidAction):
				return errs.ErrInvalidAction
			case errors.Is(err, order.ErrInvalidTransition):
				return errs.ErrInvalidTransition
			default:
				return err
			}
		}
		if err := o.orderRepo.UpdateSubOrder(txCtx, item); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if applied.FirstShipment {
			if err := o.settleSale(txCtx, item, now); err != nil {
				return err
			}
		}

		aggStatus, err := o.rollUp(txCtx, ord, item)
		if err != nil {
			return err
		}

		if err := o.enqueueStatusChanged(txCtx, ord, item, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &ApplyActionResult{
			Item:        item,
			OrderNumero: ord.Numero,
			OrderStatus: aggStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// settleSale books the VENDA for a freshly shipped sub-order exactly once; a
// partial unique index on the ledger backs the existence check.
func (o *orderUseCaseImpl) settleSale(ctx context.Context, item *order.SubOrder, now time.Time) error {
	exists, err := o.ledgerRepo.SaleExistsForItem(ctx, item.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exists {
		return nil
	}

	if err := o.ledgerRepo.LockSeller(ctx, item.SellerID()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSellerNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	sale := ledger.NewSale(item.SellerID(), item.ID(), item.Subtotal(), o.market.CommissionRate, now)
	if err := o.ledgerRepo.Insert(ctx, sale); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (o *orderUseCaseImpl) rollUp(ctx context.Context, ord *OrderSnapshot, item *order.SubOrder) (order.Status, error) {
	statuses, err := o.orderRepo.ListItemStatuses(ctx, item.OrderID())
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	agg := order.RollUp(statuses)
	if agg != ord.Status {
		if err := o.orderRepo.UpdateOrderStatus(ctx, item.OrderID(), agg); err != nil {
			return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return agg, nil
}

func (o *orderUseCaseImpl) enqueueStatusChanged(
	ctx context.Context,
	ord *OrderSnapshot,
	item *order.SubOrder,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"pedido_id":       item.OrderID(),
		"numero":          ord.Numero,
		"vendedor_id":     item.SellerID(),
		"status":          item.Status(),
		"codigo_rastreio": item.TrackingCode(),
		"type":            "pedido_status_alterado",
	})
	if err != nil {
		return err
	}
	return o.notificationRepo.CreateJob(ctx, "email", "pedido_status_alterado", payload, now)
}
