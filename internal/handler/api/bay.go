package api

import (
	"net/http"
	"strconv"

	resdto "bay-booking/internal/handler/dto/response"
	"bay-booking/internal/handler/httperr"
	"bay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BayHandler struct {
	q queries.AvailabilityQueries
}

func NewBayHandler(q queries.AvailabilityQueries) *BayHandler {
	return &BayHandler{q: q}
}

// @Summary List bays
// @Tags bays
// @Produce json
// @Success 200 {array} resdto.BayResponse
// @Failure 500 {object} httperr.Response
// @Router /bays [get]
func (h *BayHandler) List(c *gin.Context) {
	views, err := h.q.ListBays(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBayViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Bookable windows
// @Description One, two and three hour windows of contiguous available slots for a venue-local day
// @Tags bays
// @Produce json
// @Param id path int true "Bay ID"
// @Param date query string true "Day in YYYY-MM-DD"
// @Success 200 {array} resdto.WindowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bays/{id}/windows [get]
func (h *BayHandler) Windows(c *gin.Context) {
	bayID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bayID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid bay id", nil)
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "date is required", nil)
		return
	}

	views, err := h.q.Windows(c.Request.Context(), bayID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromWindowViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
