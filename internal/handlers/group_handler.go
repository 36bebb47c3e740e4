package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// GroupHandler handles subscription-group requests.
type GroupHandler struct {
	groupService services.GroupServicer
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService services.GroupServicer) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// AddGroupRequest represents the request payload for creating a group.
type AddGroupRequest struct {
	Name   string   `json:"name" binding:"omitempty,max=100"`
	SubIDs []string `json:"sub_ids" binding:"required"`
}

// AddGroup handles creating a group from a selected id set.
// @Summary     Create group
// @Description Create a named, reusable subset of subscription ids
// @Tags        groups
// @Accept      json
// @Produce     json
// @Param       request body AddGroupRequest true "Group details"
// @Success     201 {object} models.SubGroup "Group created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /groups [post]
func (h *GroupHandler) AddGroup(c *gin.Context) {
	var req AddGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	g, err := h.groupService.AddGroup(req.Name, req.SubIDs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": g})
}

// GetGroups handles listing groups.
// @Summary     List groups
// @Description Get all subscription groups, newest first
// @Tags        groups
// @Produce     json
// @Success     200 {object} map[string][]models.SubGroup "Groups"
// @Router      /groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.groupService.ListGroups()})
}

// DeleteGroup handles deleting a group.
// @Summary     Delete group
// @Description Delete a group; if it was active, settings revert to manual mode
// @Tags        groups
// @Produce     json
// @Param       id path string true "Group ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	if err := h.groupService.DeleteGroup(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyGroup handles applying a group.
// @Summary     Apply group
// @Description Set every subscription's active flag to match group membership and select the group
// @Tags        groups
// @Produce     json
// @Param       id path string true "Group ID"
// @Success     200 {object} models.SubGroup "Applied group"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id}/apply [post]
func (h *GroupHandler) ApplyGroup(c *gin.Context) {
	g, err := h.groupService.ApplyGroup(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": g})
}

// SetActiveGroupRequest selects the active group; a null group_id clears
// the selection back to manual active/pause mode.
type SetActiveGroupRequest struct {
	GroupID *string `json:"group_id"`
}

// SetActiveGroup handles selecting or clearing the active group.
// @Summary     Set active group
// @Description Select the group filtering expense totals, or clear it with null
// @Tags        groups
// @Accept      json
// @Produce     json
// @Param       request body SetActiveGroupRequest true "Group selection"
// @Success     200 {object} models.Settings "Updated settings"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /settings/active-group [put]
func (h *GroupHandler) SetActiveGroup(c *gin.Context) {
	var req SetActiveGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.groupService.SetActiveGroup(req.GroupID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
