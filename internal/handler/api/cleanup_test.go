//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bay-booking/internal/handler/api"
	resdto "bay-booking/internal/handler/dto/response"
	"bay-booking/internal/pkg/errs"
	"bay-booking/internal/usecase/commands"
	"bay-booking/tests/common/httptest"
	commandsmock "bay-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCleanupHandler_Run(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cleanup := commandsmock.NewMockCleanupCommands(ctrl)

	router := gin.New()
	router.POST("/cron/cleanup", api.NewCleanupHandler(cleanup).Run)

	t.Run("default threshold", func(t *testing.T) {
		cleanup.EXPECT().Expire(gomock.Any(), time.Duration(0)).Return(3, nil)
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/cron/cleanup", nil, "")

		var body resdto.CleanupResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, 3, body.Cleaned)
	})

	t.Run("explicit threshold", func(t *testing.T) {
		cleanup.EXPECT().Expire(gomock.Any(), 20*time.Minute).Return(0, nil)
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/cron/cleanup?thresholdMinutes=20", nil, "")

		var body resdto.CleanupResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, 0, body.Cleaned)
	})

	for _, v := range []string{"0", "1441", "abc", "-5"} {
		t.Run("rejects "+v, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/cron/cleanup?thresholdMinutes="+v, nil, "")
			httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "thresholdMinutes")
		})
	}

	t.Run("use case failure", func(t *testing.T) {
		cleanup.EXPECT().Expire(gomock.Any(), time.Duration(0)).Return(0, errs.Wrap(commands.ErrDatabaseOperationFailed, "list stale"))
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/cron/cleanup", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
	})
}
