package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
	"spendwise/internal/store"
)

// SettingsHandler handles settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents a partial settings patch. Omitted
// fields are left unchanged.
type UpdateSettingsRequest struct {
	SavingsMode  *string          `json:"savings_mode" binding:"omitempty,savings_mode"`
	SavingsValue *decimal.Decimal `json:"savings_value"`
}

// GetSettings handles reading the settings singleton.
// @Summary     Get settings
// @Description Get the savings configuration and active group selection
// @Tags        settings
// @Produce     json
// @Success     200 {object} models.Settings "Settings"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.settingsService.GetSettings()})
}

// UpdateSettings handles a partial settings patch.
// @Summary     Update settings
// @Description Patch the savings mode and/or value; percent values clamp to [0,100]
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body UpdateSettingsRequest true "Settings patch"
// @Success     200 {object} models.Settings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.SavingsValue != nil && req.SavingsValue.IsNegative() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Savings value must not be negative"))
		return
	}

	var patch store.SettingsPatch
	if req.SavingsMode != nil {
		mode := models.SavingsMode(*req.SavingsMode)
		patch.SavingsMode = &mode
	}
	patch.SavingsValue = req.SavingsValue

	c.JSON(http.StatusOK, gin.H{"settings": h.settingsService.UpdateSettings(patch)})
}
