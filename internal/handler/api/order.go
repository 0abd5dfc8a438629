package api

import (
	"errors"
	"net/http"

	reqdto "posimarket-core/internal/handler/dto/request"
	resdto "posimarket-core/internal/handler/dto/response"
	"posimarket-core/internal/pkg/errs"
	"posimarket-core/internal/usecase/commands"
	"posimarket-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Apply seller action
// @Description Advance or cancel the seller's portion of an order
// @Tags seller
// @Accept json
// @Produce json
// @Param request body reqdto.SellerActionRequest true "Action request"
// @Success 200 {object} resdto.SubOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seller/pedidos/acao [post]
func (h *OrderHandler) ApplyAction(c *gin.Context) {
	var req reqdto.SellerActionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.ApplyAction(c.Request.Context(), req.PedidoID, req.VendedorID, req.GetAction())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown action",
			})
		case errors.Is(err, errs.ErrOrderNotFound), errors.Is(err, errs.ErrNotOwner):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found for this seller",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Transition not allowed from current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromApplyActionResult(result))
}

// @Summary List seller orders
// @Description List every sub-order belonging to the seller
// @Tags seller
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {array} resdto.SellerOrderResponse
// @Failure 400 {object} map[string]string
// @Router /seller/{id}/pedidos [get]
func (h *OrderHandler) ListSellerOrders(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seller ID format",
		})
		return
	}

	views, err := h.orderQueries.GetSellerOrders(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromSellerOrderViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
