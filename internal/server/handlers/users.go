package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/access"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// ListUsers returns all dashboard accounts, newest first.
func (h *Handler) ListUsers(c *gin.Context) {
	users := make([]models.User, 0)
	h.list(c, repository.CollectionUsers, &users)
}

// UpdateUserRole changes another user's role. Changing one's own role is
// denied regardless of the target role.
func (h *Handler) UpdateUserRole(c *gin.Context) {
	actor := actorFrom(c)
	subjectID := c.Param("id")

	if !access.CanPerform(actor.Role, access.ActionUpdateUserRole, subjectID == actor.ID) {
		h.denied(c)
		return
	}

	var req struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateRole(req.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Update(c.Request.Context(), repository.CollectionUsers, subjectID, map[string]any{"role": req.Role}); err != nil {
		h.storeError(c, "update user role", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UserStats returns the role census.
func (h *Handler) UserStats(c *gin.Context) {
	users := make([]models.User, 0)
	if err := h.store.Snapshot(c.Request.Context(), repository.CollectionUsers, &users); err != nil {
		h.storeError(c, "user stats", err)
		return
	}

	c.JSON(http.StatusOK, stats.ComputeRoleCensus(users))
}
