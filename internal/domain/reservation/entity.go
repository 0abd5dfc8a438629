package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidTTL      = errors.New("ttl must be positive")
	ErrEmptyHolder     = errors.New("holder id is required")
	ErrExpired         = errors.New("reservation expired")
	ErrAlreadyTerminal = errors.New("reservation already in terminal state")
)

// Reservation is a temporary claim on product stock held by a checkout in
// progress. It is owned by that checkout until consumed, released, or swept.
type Reservation struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  int32
	holderID  string
	status    Status
	createdAt time.Time
	expiresAt time.Time
}

func NewReservation(productID uuid.UUID, quantity int32, holderID string, now time.Time, ttl time.Duration) (*Reservation, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if holderID == "" {
		return nil, ErrEmptyHolder
	}

	return &Reservation{
		id:        uuid.New(),
		productID: productID,
		quantity:  quantity,
		holderID:  holderID,
		status:    StatusActive,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func Reconstruct(
	id, productID uuid.UUID,
	quantity int32,
	holderID string,
	status Status,
	createdAt, expiresAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		productID: productID,
		quantity:  quantity,
		holderID:  holderID,
		status:    status,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return !r.expiresAt.After(now)
}

// Consume finalizes the claim into a sale. Expiry is re-checked here so a
// reservation past its deadline is unusable even before the sweeper runs.
func (r *Reservation) Consume(now time.Time) error {
	switch r.status {
	case StatusActive:
		if r.HasExpired(now) {
			return ErrExpired
		}
		r.status = StatusConsumed
		return nil
	case StatusConsumed, StatusExpired, StatusReleased:
		return ErrAlreadyTerminal
	default:
		return ErrAlreadyTerminal
	}
}

// Release returns the claim to available stock on explicit abandonment.
func (r *Reservation) Release() error {
	switch r.status {
	case StatusActive:
		r.status = StatusReleased
		return nil
	case StatusConsumed, StatusExpired, StatusReleased:
		return ErrAlreadyTerminal
	default:
		return ErrAlreadyTerminal
	}
}

// Expire is the sweeper-side transition; only past-deadline ACTIVE rows qualify.
func (r *Reservation) Expire(now time.Time) error {
	switch r.status {
	case StatusActive:
		if !r.HasExpired(now) {
			return ErrAlreadyTerminal
		}
		r.status = StatusExpired
		return nil
	case StatusConsumed, StatusExpired, StatusReleased:
		return ErrAlreadyTerminal
	default:
		return ErrAlreadyTerminal
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) ProductID() uuid.UUID { return r.productID }
func (r *Reservation) Quantity() int32      { return r.quantity }
func (r *Reservation) HolderID() string     { return r.holderID }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) ExpiresAt() time.Time { return r.expiresAt }
