package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// SubscriptionHandler handles subscription requests.
type SubscriptionHandler struct {
	subService services.SubscriptionServicer
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subService services.SubscriptionServicer) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// AddSubscriptionRequest represents the request payload for creating a
// subscription.
type AddSubscriptionRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=100"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount" binding:"required"`
	Active        bool            `json:"active"`
}

// AddSubscription handles creating a subscription.
// @Summary     Create subscription
// @Description Create a recurring monthly expense
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Param       request body AddSubscriptionRequest true "Subscription details"
// @Success     201 {object} models.Subscription "Subscription created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /subscriptions [post]
func (h *SubscriptionHandler) AddSubscription(c *gin.Context) {
	var req AddSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := h.subService.AddSub(req.Name, req.MonthlyAmount, req.Active)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscription": sub})
}

// GetSubscriptions handles listing subscriptions.
// @Summary     List subscriptions
// @Description Get all subscriptions in creation order
// @Tags        subscriptions
// @Produce     json
// @Success     200 {object} map[string][]models.Subscription "Subscriptions"
// @Router      /subscriptions [get]
func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscriptions": h.subService.ListSubs()})
}

// GetTopSubscriptions handles the top-subscription ranking.
// @Summary     Top subscriptions
// @Description Rank the subscriptions counting toward expenses by monthly amount
// @Tags        subscriptions
// @Produce     json
// @Param       limit query int false "Max entries (default 5)"
// @Success     200 {object} map[string][]models.Subscription "Ranked subscriptions"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /subscriptions/top [get]
func (h *SubscriptionHandler) GetTopSubscriptions(c *gin.Context) {
	limit := 5
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": h.subService.TopSubs(limit)})
}

// ToggleSubscription handles flipping a subscription's active flag.
// @Summary     Toggle subscription
// @Description Flip a subscription's active flag
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} models.Subscription "Updated subscription"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id}/toggle [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	sub, err := h.subService.ToggleSub(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// DeleteSubscription handles deleting a subscription.
// @Summary     Delete subscription
// @Description Delete a subscription; its id is removed from every group
// @Tags        subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Subscription not found"
// @Router      /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	if err := h.subService.DeleteSub(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
