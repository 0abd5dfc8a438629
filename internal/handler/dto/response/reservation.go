package response

import (
	"time"

	"posimarket-core/internal/domain/reservation"
	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	ProdutoID  uuid.UUID `json:"produtoId"`
	Quantidade int32     `json:"quantidade"`
	HolderID   string    `json:"holderId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func FromReservationEntity(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		ProdutoID:  r.ProductID(),
		Quantidade: r.Quantity(),
		HolderID:   r.HolderID(),
		Status:     string(r.Status()),
		CreatedAt:  r.CreatedAt(),
		ExpiresAt:  r.ExpiresAt(),
	}
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		ProdutoID:  rm.ProductID,
		Quantidade: rm.Quantity,
		HolderID:   rm.HolderID,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
		ExpiresAt:  rm.ExpiresAt,
	}
}
