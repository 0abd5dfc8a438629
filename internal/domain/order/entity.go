package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAction     = errors.New("unknown order action")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// SubOrder is the per-seller slice of a multi-seller order, one per
// (order, seller) no matter how many of the seller's products the cart held.
// Sellers transition it independently through the status machine; its subtotal
// covers the seller's whole portion.
type SubOrder struct {
	id           uuid.UUID
	orderID      uuid.UUID
	sellerID     uuid.UUID
	quantity     int32
	subtotal     float64
	status       Status
	trackingCode *string
	updatedAt    time.Time
}

func NewSubOrder(orderID, sellerID uuid.UUID, quantity int32, subtotal float64, now time.Time) *SubOrder {
	return &SubOrder{
		id:        uuid.New(),
		orderID:   orderID,
		sellerID:  sellerID,
		quantity:  quantity,
		subtotal:  subtotal,
		status:    StatusPending,
		updatedAt: now,
	}
}

func ReconstructSubOrder(
	id, orderID, sellerID uuid.UUID,
	quantity int32,
	subtotal float64,
	status Status,
	trackingCode *string,
	updatedAt time.Time,
) *SubOrder {
	return &SubOrder{
		id:           id,
		orderID:      orderID,
		sellerID:     sellerID,
		quantity:     quantity,
		subtotal:     subtotal,
		status:       status,
		trackingCode: trackingCode,
		updatedAt:    updatedAt,
	}
}

// ApplyResult reports what a transition did beyond the status change itself.
type ApplyResult struct {
	// FirstShipment is true when this call moved the sub-order into ENVIADO,
	// which is the single point where the seller's VENDA is settled.
	FirstShipment bool
}

// Apply runs one seller action through the state machine. The tracking code is
// issued on the transition into ENVIADO and never cleared afterwards.
func (s *SubOrder) Apply(action Action, carrier string, now time.Time) (ApplyResult, error) {
	target, ok := action.TargetStatus()
	if !ok {
		return ApplyResult{}, ErrInvalidAction
	}
	if !CanTransition(s.status, target) {
		return ApplyResult{}, ErrInvalidTransition
	}

	var result ApplyResult
	if target == StatusShipped && s.trackingCode == nil {
		code := TrackingCode(now, carrier)
		s.trackingCode = &code
		result.FirstShipment = true
	}

	s.status = target
	s.updatedAt = now
	return result, nil
}

func (s *SubOrder) ID() uuid.UUID         { return s.id }
func (s *SubOrder) OrderID() uuid.UUID    { return s.orderID }
func (s *SubOrder) SellerID() uuid.UUID   { return s.sellerID }
func (s *SubOrder) Quantity() int32       { return s.quantity }
func (s *SubOrder) Subtotal() float64     { return s.subtotal }
func (s *SubOrder) Status() Status        { return s.status }
func (s *SubOrder) TrackingCode() *string { return s.trackingCode }
func (s *SubOrder) UpdatedAt() time.Time  { return s.updatedAt }
