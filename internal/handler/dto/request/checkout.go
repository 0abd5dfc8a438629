package request

import (
	"strings"

	"posimarket-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CompleteCheckoutRequest struct {
	CompradorID     uuid.UUID `json:"compradorId" binding:"required"`
	HolderID        string    `json:"holderId" binding:"required"`
	EnderecoEntrega string    `json:"enderecoEntrega" binding:"required"`
	MetodoEnvio     string    `json:"metodoEnvio" binding:"required"`
	Transportadora  string    `json:"transportadora"`
}

func (r CompleteCheckoutRequest) GetTransportadora() string {
	trimmed := strings.TrimSpace(r.Transportadora)
	if trimmed == "" {
		return "Correios"
	}
	return trimmed
}

func (r CompleteCheckoutRequest) ToInput() commands.CompleteCheckoutInput {
	return commands.CompleteCheckoutInput{
		BuyerID:         r.CompradorID,
		HolderID:        strings.TrimSpace(r.HolderID),
		EnderecoEntrega: strings.TrimSpace(r.EnderecoEntrega),
		MetodoEnvio:     strings.TrimSpace(r.MetodoEnvio),
		Transportadora:  r.GetTransportadora(),
	}
}
