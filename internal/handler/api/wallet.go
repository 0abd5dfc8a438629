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

type WalletHandler struct {
	walletCommands commands.WalletCommands
	walletQueries  queries.WalletQueries
}

func NewWalletHandler(walletCommands commands.WalletCommands, walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: walletCommands,
		walletQueries:  walletQueries,
	}
}

// @Summary Get seller balance
// @Description Current balance derived from the seller's transaction ledger
// @Tags seller
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seller/{id}/saldo [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seller ID format",
		})
		return
	}

	view, err := h.walletQueries.GetBalance(c.Request.Context(), sellerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSellerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seller not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary Get seller statement
// @Description Transaction history, most recent first
// @Tags seller
// @Produce json
// @Param id path string true "Seller ID"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /seller/{id}/transacoes [get]
func (h *WalletHandler) GetStatement(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seller ID format",
		})
		return
	}

	views, err := h.walletQueries.GetStatement(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromTransactionViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Request withdrawal
// @Description Debit the seller's balance with a pending SAQUE transaction
// @Tags seller
// @Accept json
// @Produce json
// @Param id path string true "Seller ID"
// @Param request body reqdto.WithdrawRequest true "Withdrawal request"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /seller/{id}/saques [post]
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seller ID format",
		})
		return
	}

	var req reqdto.WithdrawRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	tx, err := h.walletCommands.Withdraw(c.Request.Context(), sellerID, req.Valor)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSellerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Seller not found",
			})
		case errors.Is(err, errs.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Withdrawal amount must be positive",
			})
		case errors.Is(err, errs.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Insufficient balance for withdrawal",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTransactionEntity(tx))
}
