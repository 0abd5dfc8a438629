package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"posimarket-core/internal/domain/ledger"
	"posimarket-core/internal/domain/order"
	"posimarket-core/internal/domain/reservation"
	"posimarket-core/internal/infra"
	"posimarket-core/internal/pkg/clock"
	"posimarket-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type CompleteCheckoutInput struct {
	BuyerID         uuid.UUID
	HolderID        string
	EnderecoEntrega string
	MetodoEnvio     string
	Transportadora  string
}

type CheckoutResult struct {
	OrderID   uuid.UUID
	Numero    string
	ItemCount int
	Total     float64
}

type CheckoutCommands interface {
	Complete(ctx context.Context, in CompleteCheckoutInput) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	txm              TxManager
	reservationRepo  ReservationRepository
	productRepo      ProductRepository
	orderRepo        OrderRepository
	notificationRepo NotificationRepository
	clock            clock.Clock
}

func NewCheckoutUseCase(
	txm TxManager,
	reservationRepo ReservationRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	notificationRepo NotificationRepository,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		txm:              txm,
		reservationRepo:  reservationRepo,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		clock:            clk,
	}
}

// Complete converts every ACTIVE reservation of the holder into an order,
// atomically. One expired reservation fails the whole checkout and consumes
// nothing; the buyer must re-reserve.
func (c *checkoutUseCaseImpl) Complete(ctx context.Context, in CompleteCheckoutInput) (*CheckoutResult, error) {
	now := c.clock.Now()
	var result *CheckoutResult

	err := c.txm.WithTx(ctx, func(txCtx context.Context) error {
		reservations, err := c.reservationRepo.ListActiveByHolderForUpdate(txCtx, in.HolderID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(reservations) == 0 {
			return errs.ErrNoActiveReservations
		}

		products, err := c.lockProducts(txCtx, reservations)
		if err != nil {
			return err
		}

		orderID := uuid.New()
		numero := buildNumero(orderID, now)

		rec := NewOrderRecord{
			ID:              orderID,
			BuyerID:         in.BuyerID,
			Numero:          numero,
			Status:          order.StatusPending,
			MetodoEnvio:     in.MetodoEnvio,
			Transportadora:  in.Transportadora,
			EnderecoEntrega: in.EnderecoEntrega,
			DataPedido:      now,
		}
		if err := c.orderRepo.CreateOrder(txCtx, rec); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// One sub-order per seller: the action contract addresses a seller's
		// portion by (order, seller), so a cart holding several products of
		// the same seller must collapse into a single transitionable item.
		portions := make(map[uuid.UUID]*sellerPortion)
		var sellers []uuid.UUID
		var total float64
		for _, res := range reservations {
			if err := res.Consume(now); err != nil {
				return mapTransitionErr(err)
			}
			if err := c.reservationRepo.UpdateStatus(txCtx, res.ID(), res.Status()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if err := c.productRepo.IncrementSold(txCtx, res.ProductID(), res.Quantity()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			product := products[res.ProductID()]
			subtotal := ledger.Round2(product.Price * float64(res.Quantity()))
			portion, ok := portions[product.SellerID]
			if !ok {
				portion = &sellerPortion{}
				portions[product.SellerID] = portion
				sellers = append(sellers, product.SellerID)
			}
			portion.quantity += res.Quantity()
			portion.subtotal += subtotal
			portion.lines = append(portion.lines, SubOrderLine{
				ID:        uuid.New(),
				ProductID: product.ID,
				Quantity:  res.Quantity(),
				Subtotal:  subtotal,
			})
			total += subtotal
		}

		for _, sellerID := range sellers {
			portion := portions[sellerID]
			item := order.NewSubOrder(orderID, sellerID, portion.quantity, ledger.Round2(portion.subtotal), now)
			for i := range portion.lines {
				portion.lines[i].ItemID = item.ID()
			}
			if err := c.orderRepo.CreateSubOrder(txCtx, item, portion.lines); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := c.enqueueOrderCreated(txCtx, orderID, numero, in.BuyerID, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = &CheckoutResult{
			OrderID:   orderID,
			Numero:    numero,
			ItemCount: len(reservations),
			Total:     ledger.Round2(total),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// sellerPortion accumulates one seller's share of the cart before the
// sub-order row is written.
type sellerPortion struct {
	quantity int32
	subtotal float64
	lines    []SubOrderLine
}

// lockProducts takes the product row locks in id order so two checkouts
// sharing products cannot deadlock.
func (c *checkoutUseCaseImpl) lockProducts(
	ctx context.Context,
	reservations []*reservation.Reservation,
) (map[uuid.UUID]*ProductSnapshot, error) {
	ids := make([]uuid.UUID, 0, len(reservations))
	seen := make(map[uuid.UUID]bool, len(reservations))
	for _, res := range reservations {
		if !seen[res.ProductID()] {
			seen[res.ProductID()] = true
			ids = append(ids, res.ProductID())
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return strings.Compare(ids[i].String(), ids[j].String()) < 0
	})

	products := make(map[uuid.UUID]*ProductSnapshot, len(ids))
	for _, id := range ids {
		product, err := c.productRepo.FindForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrProductNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		products[id] = product
	}
	return products, nil
}

func (c *checkoutUseCaseImpl) enqueueOrderCreated(
	ctx context.Context,
	orderID uuid.UUID,
	numero string,
	buyerID uuid.UUID,
	now time.Time,
) error {
	payload, err := json.Marshal(map[string]any{
		"pedido_id":    orderID,
		"numero":       numero,
		"comprador_id": buyerID,
		"type":         "pedido_criado",
	})
	if err != nil {
		return err
	}
	return c.notificationRepo.CreateJob(ctx, "email", "pedido_criado", payload, now)
}

func buildNumero(orderID uuid.UUID, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(orderID.String(), "-", "")[:8])
	return fmt.Sprintf("PM-%s-%s", now.Format("20060102"), short)
}
