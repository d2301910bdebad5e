package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/access"
)

// ListAnimals returns the full animal registry, newest first.
func (h *Handler) ListAnimals(c *gin.Context) {
	animals := make([]models.Animal, 0)
	h.list(c, repository.CollectionAnimals, &animals)
}

// CreateAnimal registers a new animal.
func (h *Handler) CreateAnimal(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionCreateAnimal, false) {
		h.denied(c)
		return
	}

	var animal models.Animal
	if err := c.ShouldBindJSON(&animal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := animal.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	animal.ID = ""
	animal.CreatedBy = actor.ID
	animal.CreatedAt = h.now().UnixMilli()

	id, err := h.store.Create(c.Request.Context(), repository.CollectionAnimals, animal)
	if err != nil {
		h.storeError(c, "create animal", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateAnimalStatus patches the status field of an animal.
func (h *Handler) UpdateAnimalStatus(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionUpdateAnimalStatus, false) {
		h.denied(c)
		return
	}

	var req struct {
		Status models.AnimalStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateAnimalStatus(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.Update(c.Request.Context(), repository.CollectionAnimals, c.Param("id"), map[string]any{"status": req.Status})
	if err != nil {
		h.storeError(c, "update animal status", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAnimal removes an animal permanently.
func (h *Handler) DeleteAnimal(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionDeleteAnimal, false) {
		h.denied(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), repository.CollectionAnimals, c.Param("id")); err != nil {
		h.storeError(c, "delete animal", err)
		return
	}

	c.Status(http.StatusNoContent)
}
