//go:build unit || e2e

package builder

import (
	"time"

	domreservation "posimarket-core/internal/domain/reservation"
	reqdto "posimarket-core/internal/handler/dto/request"
	"posimarket-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ProductID uuid.UUID
	Quantity  int32
	HolderID  string
	Now       time.Time
	TTL       time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ProductID: uuid.New(),
		Quantity:  2,
		HolderID:  "cart-7f3a",
		Now:       time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		TTL:       15 * time.Minute,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(r.ProductID, r.Quantity, r.HolderID, r.Now, r.TTL)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ProdutoID:  r.ProductID,
		Quantidade: r.Quantity,
		HolderID:   r.HolderID,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        uuid.New(),
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		HolderID:  r.HolderID,
		Status:    string(domreservation.StatusActive),
		CreatedAt: r.Now,
		ExpiresAt: r.Now.Add(r.TTL),
	}
}
