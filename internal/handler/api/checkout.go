package api

import (
	"errors"
	"net/http"

	reqdto "posimarket-core/internal/handler/dto/request"
	resdto "posimarket-core/internal/handler/dto/response"
	"posimarket-core/internal/pkg/errs"
	"posimarket-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkoutCommands: checkoutCommands}
}

// @Summary Complete checkout
// @Description Convert the holder's active reservations into a confirmed order
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CompleteCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) CompleteCheckout(c *gin.Context) {
	var req reqdto.CompleteCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.Complete(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoActiveReservations):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No active reservations for this checkout",
			})
		case errors.Is(err, errs.ErrReservationExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Reservation has expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
