package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// ReportHandler handles report-history requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents the request payload for saving a report.
type CreateReportRequest struct {
	Month string `json:"month" binding:"omitempty,month_key"`
}

// CreateReport handles freezing a month's rollup into the history.
// @Summary     Create report
// @Description Compute the month's rollup and append it to the report history
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body CreateReportRequest true "Report month (defaults to current)"
// @Success     201 {object} models.ReportEntry "Report entry"
// @Failure     400 {object} ErrorResponse "Invalid month key"
// @Router      /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	entry, err := h.reportService.CreateReport(req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": entry})
}

// GetReports handles listing the report history.
// @Summary     List reports
// @Description Get the report history, newest first, paginated
// @Tags        reports
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ReportEntry] "Paginated history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports [get]
func (h *ReportHandler) GetReports(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.reportService.ListReports(page))
}

// GetReportPayload handles building the renderer input for a saved entry.
// @Summary     Report payload
// @Description Get the document-renderer payload for a saved report, figures pre-stringified to 2 decimal places
// @Tags        reports
// @Produce     json
// @Param       id path string true "Report ID"
// @Success     200 {object} report.Payload "Renderer payload"
// @Failure     404 {object} ErrorResponse "Report not found"
// @Router      /reports/{id}/payload [get]
func (h *ReportHandler) GetReportPayload(c *gin.Context) {
	payload, err := h.reportService.ReportPayload(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payload": payload})
}

// ClearReports handles clearing the whole history.
// @Summary     Clear report history
// @Description Discard all saved report entries
// @Tags        reports
// @Success     204 "Cleared"
// @Router      /reports [delete]
func (h *ReportHandler) ClearReports(c *gin.Context) {
	h.reportService.ClearReports()
	c.Status(http.StatusNoContent)
}
