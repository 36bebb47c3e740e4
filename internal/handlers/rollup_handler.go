package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// RollupHandler handles monthly rollup and trend requests.
type RollupHandler struct {
	rollupService services.RollupServicer
}

// NewRollupHandler creates a new RollupHandler.
func NewRollupHandler(rollupService services.RollupServicer) *RollupHandler {
	return &RollupHandler{rollupService: rollupService}
}

// rollupQuery binds the optional month selector.
type rollupQuery struct {
	Month string `form:"month" binding:"omitempty,month_key"`
}

// trendQuery binds the trend window.
type trendQuery struct {
	Month  string `form:"month" binding:"omitempty,month_key"`
	Months int    `form:"months" binding:"omitempty,min=1,max=24"`
}

// GetRollup handles computing a month's rollup.
// @Summary     Monthly rollup
// @Description Compute the full set of derived figures for a month (defaults to the current month)
// @Tags        rollup
// @Produce     json
// @Param       month query string false "Month key (YYYY-MM)"
// @Success     200 {object} models.MonthRollup "Rollup"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Router      /rollup [get]
func (h *RollupHandler) GetRollup(c *gin.Context) {
	var q rollupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	roll, err := h.rollupService.Rollup(q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rollup": roll})
}

// GetTrend handles the recent-months trend series.
// @Summary     Rollup trend
// @Description Compute a consecutive-month rollup series ending at the given month, oldest first
// @Tags        rollup
// @Produce     json
// @Param       month  query string false "Ending month key (YYYY-MM, defaults to current)"
// @Param       months query int    false "Series length (1-24, default 6)"
// @Success     200 {object} map[string][]services.TrendPoint "Trend points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /rollup/trend [get]
func (h *RollupHandler) GetTrend(c *gin.Context) {
	var q trendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	points, err := h.rollupService.Trend(q.Month, q.Months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": points})
}
