package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "bay-booking/internal/handler/dto/response"
	"bay-booking/internal/handler/httperr"
	"bay-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxThresholdMinutes = 1440

type CleanupHandler struct {
	cleanup commands.CleanupCommands
}

func NewCleanupHandler(cleanup commands.CleanupCommands) *CleanupHandler {
	return &CleanupHandler{cleanup: cleanup}
}

// @Summary Expire stale holds
// @Description Called by the platform scheduler. Cancels pending bookings older than the threshold and frees their slots.
// @Tags cron
// @Produce json
// @Security CronSecret
// @Param thresholdMinutes query int false "Age in minutes (1-1440, default 15)"
// @Success 200 {object} resdto.CleanupResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /cron/cleanup [post]
func (h *CleanupHandler) Run(c *gin.Context) {
	var threshold time.Duration
	if v := c.Query("thresholdMinutes"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 1 || minutes > maxThresholdMinutes {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "thresholdMinutes must be between 1 and 1440", nil)
			return
		}
		threshold = time.Duration(minutes) * time.Minute
	}

	cleaned, err := h.cleanup.Expire(c.Request.Context(), threshold)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CleanupResponse{Cleaned: cleaned})
}
