package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// StateHandler handles whole-state export, import, and reset.
type StateHandler struct {
	stateService services.StateServicer
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(stateService services.StateServicer) *StateHandler {
	return &StateHandler{stateService: stateService}
}

// ExportState handles exporting the full state.
// @Summary     Export state
// @Description Get the full sanitized state as JSON
// @Tags        state
// @Produce     json
// @Success     200 {object} models.StoreState "Full state"
// @Router      /state/export [get]
func (h *StateHandler) ExportState(c *gin.Context) {
	c.JSON(http.StatusOK, h.stateService.Export())
}

// ImportState handles importing a state blob. Legacy exports and loosely
// typed blobs are accepted; malformed fields are coerced to defaults and
// reported back rather than rejected.
// @Summary     Import state
// @Description Replace the whole state from a JSON blob (legacy exports accepted); returns the applied corrections
// @Tags        state
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]interface{} "Imported state and corrections"
// @Failure     400 {object} ErrorResponse "Unreadable body"
// @Router      /state/import [post]
func (h *StateHandler) ImportState(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unreadable request body"))
		return
	}

	state, fixes := h.stateService.Import(data)
	if fixes == nil {
		fixes = []models.FieldCorrection{}
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "corrections": fixes})
}

// ResetState handles restoring the default empty state.
// @Summary     Reset state
// @Description Discard everything and restore the default empty state
// @Tags        state
// @Success     204 "Reset"
// @Router      /state/reset [post]
func (h *StateHandler) ResetState(c *gin.Context) {
	h.stateService.Reset()
	c.Status(http.StatusNoContent)
}
