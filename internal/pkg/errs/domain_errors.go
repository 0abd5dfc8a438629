package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Reservation errors
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationExpired   = errors.New("reservation expired")
	ErrReservationTerminal  = errors.New("reservation already terminal")
	ErrNoActiveReservations = errors.New("no active reservations for holder")
	ErrProductNotFound      = errors.New("product not found")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOwner          = errors.New("order does not belong to seller")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidAction     = errors.New("unknown order action")

	// Ledger errors
	ErrSellerNotFound      = errors.New("seller not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
