package api

import (
	"fmt"
	"net/http"

	resdto "posimarket-core/internal/handler/dto/response"
	"posimarket-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CleanupHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewCleanupHandler(reservationCommands commands.ReservationCommands) *CleanupHandler {
	return &CleanupHandler{reservationCommands: reservationCommands}
}

// @Summary Sweep expired reservations
// @Description Transition every overdue ACTIVE reservation to EXPIRED
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CleanupResponse
// @Failure 401 {object} map[string]string
// @Router /stock-reservations/cleanup [post]
func (h *CleanupHandler) RunCleanup(c *gin.Context) {
	count, err := h.reservationCommands.CleanupExpired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	msg := fmt.Sprintf("%d reservas expiradas removidas", count)
	c.JSON(http.StatusOK, resdto.NewCleanupResponse(count, msg))
}

// @Summary Cleanup probe
// @Description Report how the sweep endpoint should be invoked
// @Tags reservations
// @Produce json
// @Success 200 {object} map[string]string
// @Router /stock-reservations/cleanup [get]
func (h *CleanupHandler) CleanupProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Use POST to run the expired reservation sweep",
	})
}
