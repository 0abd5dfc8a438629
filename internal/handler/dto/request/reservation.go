package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ProdutoID  uuid.UUID `json:"produtoId" binding:"required"`
	Quantidade int32     `json:"quantidade" binding:"required,gt=0"`
	HolderID   string    `json:"holderId" binding:"required"`
}

func (r CreateReservationRequest) GetHolderID() string {
	return strings.TrimSpace(r.HolderID)
}
