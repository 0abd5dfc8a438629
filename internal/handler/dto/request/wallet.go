package request

type WithdrawRequest struct {
	Valor float64 `json:"valor" binding:"required,gt=0"`
}
