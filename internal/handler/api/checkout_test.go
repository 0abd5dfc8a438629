//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"posimarket-core/internal/handler/api"
	reqdto "posimarket-core/internal/handler/dto/request"
	resdto "posimarket-core/internal/handler/dto/response"
	"posimarket-core/internal/pkg/errs"
	"posimarket-core/internal/usecase/commands"
	commonhttp "posimarket-core/tests/common/httptest"
	commandsmock "posimarket-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockCheckoutCommands
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = &commandsmock.MockCheckoutCommands{}
	handler := api.NewCheckoutHandler(s.mockCommands)

	s.router.POST("/checkout", handler.CompleteCheckout)
}

func (s *CheckoutHandlerTestSuite) validRequest() reqdto.CompleteCheckoutRequest {
	return reqdto.CompleteCheckoutRequest{
		CompradorID:     uuid.New(),
		HolderID:        "cart-7f3a",
		EnderecoEntrega: "Rua das Laranjeiras 42",
		MetodoEnvio:     "PAC",
	}
}

func (s *CheckoutHandlerTestSuite) TestCompleteCheckout() {
	s.Run("success", func() {
		s.SetupTest()
		req := s.validRequest()
		orderID := uuid.New()

		s.mockCommands.On("Complete", mock.Anything, mock.MatchedBy(func(in commands.CompleteCheckoutInput) bool {
			return in.HolderID == req.HolderID && in.Transportadora == "Correios"
		})).Return(&commands.CheckoutResult{
			OrderID:   orderID,
			Numero:    "PM-20250310-AB12CD34",
			ItemCount: 2,
			Total:     189.70,
		}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", req, "")

		var resp resdto.CheckoutResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(orderID, resp.PedidoID)
		s.Equal("PM-20250310-AB12CD34", resp.Numero)
		s.Equal(2, resp.Itens)
		s.InDelta(189.70, resp.Total, 0.001)
	})

	s.Run("explicit carrier is passed through", func() {
		s.SetupTest()
		req := s.validRequest()
		req.Transportadora = "Jadlog"

		s.mockCommands.On("Complete", mock.Anything, mock.MatchedBy(func(in commands.CompleteCheckoutInput) bool {
			return in.Transportadora == "Jadlog"
		})).Return(&commands.CheckoutResult{OrderID: uuid.New(), Numero: "PM-20250310-00000000", ItemCount: 1, Total: 10.00}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", req, "")
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("no active reservations", func() {
		s.SetupTest()
		s.mockCommands.On("Complete", mock.Anything, mock.Anything).
			Return(nil, errs.ErrNoActiveReservations)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", s.validRequest(), "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "No active reservations for this checkout")
	})

	s.Run("expired reservation", func() {
		s.SetupTest()
		s.mockCommands.On("Complete", mock.Anything, mock.Anything).
			Return(nil, errs.ErrReservationExpired)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", s.validRequest(), "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusGone, "Reservation has expired")
	})

	s.Run("missing fields", func() {
		s.SetupTest()
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout",
			map[string]any{"holderId": "cart-7f3a"}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		s.mockCommands.AssertNotCalled(s.T(), "Complete", mock.Anything, mock.Anything)
	})
}

func TestCheckoutHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}
