package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// WorkHandler handles income-entry requests.
type WorkHandler struct {
	workService services.WorkServicer
}

// NewWorkHandler creates a new WorkHandler.
func NewWorkHandler(workService services.WorkServicer) *WorkHandler {
	return &WorkHandler{workService: workService}
}

// AddWorkRequest represents the request payload for recording income.
// For monthly entries the date may be a bare YYYY-MM; it is expanded to
// the first of the month. End is only meaningful for weekly entries.
type AddWorkRequest struct {
	Mode   string          `json:"mode" binding:"required,period_mode"`
	Date   string          `json:"date" binding:"required,work_date"`
	End    string          `json:"end" binding:"omitempty,iso_date"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Hours  *float64        `json:"hours"`
	Note   string          `json:"note" binding:"omitempty,max=500"`
}

// AddWork handles recording a new income entry.
// @Summary     Record income
// @Description Record a weekly or monthly work income entry
// @Tags        work
// @Accept      json
// @Produce     json
// @Param       request body AddWorkRequest true "Income entry"
// @Success     201 {object} models.WorkLog "Entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /work [post]
func (h *WorkHandler) AddWork(c *gin.Context) {
	var req AddWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	w, err := h.workService.AddWork(services.AddWorkInput{
		Mode:   models.PeriodMode(req.Mode),
		Date:   req.Date,
		End:    req.End,
		Amount: req.Amount,
		Hours:  req.Hours,
		Note:   req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"work": w})
}

// GetWork handles listing income entries.
// @Summary     List income entries
// @Description Get income entries, newest first, paginated
// @Tags        work
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.WorkLog] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /work [get]
func (h *WorkHandler) GetWork(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.workService.ListWork(page))
}

// weekQuery binds the month selector for week buckets.
type weekQuery struct {
	Month string `form:"month" binding:"required,month_key"`
}

// GetWeekBuckets handles the weekly breakdown of a month.
// @Summary     Week buckets
// @Description Get a month's weekly income entries grouped into Monday-start weeks
// @Tags        work
// @Produce     json
// @Param       month query string true "Month key (YYYY-MM)"
// @Success     200 {object} map[string][]services.WeekBucket "Week buckets"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Router      /work/weeks [get]
func (h *WorkHandler) GetWeekBuckets(c *gin.Context) {
	var q weekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	buckets, err := h.workService.WeekBuckets(q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeks": buckets})
}

// DeleteWork handles deleting an income entry.
// @Summary     Delete income entry
// @Description Delete an income entry by id
// @Tags        work
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Entry not found"
// @Router      /work/{id} [delete]
func (h *WorkHandler) DeleteWork(c *gin.Context) {
	if err := h.workService.DeleteWork(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
