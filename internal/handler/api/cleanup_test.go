//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"posimarket-core/internal/handler/api"
	resdto "posimarket-core/internal/handler/dto/response"
	"posimarket-core/internal/handler/middleware"
	"posimarket-core/internal/pkg/config"
	commonhttp "posimarket-core/tests/common/httptest"
	commandsmock "posimarket-core/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCleanupRouter(secret string, mockCommands *commandsmock.MockReservationCommands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := api.NewCleanupHandler(mockCommands)
	cronAuth := middleware.NewCronAuthMiddleware(config.MarketConfig{CronSecretToken: secret})

	router.POST("/stock-reservations/cleanup", cronAuth.RequireCronToken(), handler.RunCleanup)
	router.GET("/stock-reservations/cleanup", handler.CleanupProbe)
	return router
}

func TestRunCleanup(t *testing.T) {
	t.Run("sweeps and reports count", func(t *testing.T) {
		mockCommands := &commandsmock.MockReservationCommands{}
		mockCommands.On("CleanupExpired", mock.Anything).Return(int64(3), nil)
		router := newCleanupRouter("s3cret", mockCommands)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/stock-reservations/cleanup", nil, "s3cret")

		var resp resdto.CleanupResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, int64(3), resp.DeletedCount)
		assert.Contains(t, resp.Message, "3")
	})

	t.Run("second sweep finds nothing", func(t *testing.T) {
		mockCommands := &commandsmock.MockReservationCommands{}
		mockCommands.On("CleanupExpired", mock.Anything).Return(int64(0), nil)
		router := newCleanupRouter("s3cret", mockCommands)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/stock-reservations/cleanup", nil, "s3cret")

		var resp resdto.CleanupResponse
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.True(t, resp.Success)
		assert.Zero(t, resp.DeletedCount)
	})

	t.Run("wrong token", func(t *testing.T) {
		mockCommands := &commandsmock.MockReservationCommands{}
		router := newCleanupRouter("s3cret", mockCommands)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/stock-reservations/cleanup", nil, "wrong")

		require.Equal(t, http.StatusUnauthorized, w.Code)
		mockCommands.AssertNotCalled(t, "CleanupExpired", mock.Anything)
	})

	t.Run("missing token", func(t *testing.T) {
		mockCommands := &commandsmock.MockReservationCommands{}
		router := newCleanupRouter("s3cret", mockCommands)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/stock-reservations/cleanup", nil, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no configured token leaves the endpoint open", func(t *testing.T) {
		mockCommands := &commandsmock.MockReservationCommands{}
		mockCommands.On("CleanupExpired", mock.Anything).Return(int64(1), nil)
		router := newCleanupRouter("", mockCommands)

		w := commonhttp.PerformRequest(t, router, http.MethodPost, "/stock-reservations/cleanup", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCleanupProbe(t *testing.T) {
	mockCommands := &commandsmock.MockReservationCommands{}
	router := newCleanupRouter("s3cret", mockCommands)

	w := commonhttp.PerformRequest(t, router, http.MethodGet, "/stock-reservations/cleanup", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	mockCommands.AssertNotCalled(t, "CleanupExpired", mock.Anything)
}
