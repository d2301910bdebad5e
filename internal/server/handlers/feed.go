package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/access"
)

// ListFeedRecords returns the feed inventory, newest first.
func (h *Handler) ListFeedRecords(c *gin.Context) {
	records := make([]models.FeedRecord, 0)
	h.list(c, repository.CollectionFeedRecords, &records)
}

// CreateFeedRecord adds a feed inventory line.
func (h *Handler) CreateFeedRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionCreateFeedRecord, false) {
		h.denied(c)
		return
	}

	var record models.FeedRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := record.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record.ID = ""
	record.CreatedBy = actor.ID
	record.CreatedAt = h.now().UnixMilli()

	id, err := h.store.Create(c.Request.Context(), repository.CollectionFeedRecords, record)
	if err != nil {
		h.storeError(c, "create feed record", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteFeedRecord removes a feed inventory line permanently.
func (h *Handler) DeleteFeedRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionDeleteFeedRecord, false) {
		h.denied(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), repository.CollectionFeedRecords, c.Param("id")); err != nil {
		h.storeError(c, "delete feed record", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListNutritionSchedules returns the feeding schedule, newest first.
func (h *Handler) ListNutritionSchedules(c *gin.Context) {
	schedules := make([]models.NutritionSchedule, 0)
	h.list(c, repository.CollectionNutritionSchedules, &schedules)
}

// CreateNutritionSchedule adds a feeding slot.
func (h *Handler) CreateNutritionSchedule(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionCreateNutritionSchedule, false) {
		h.denied(c)
		return
	}

	var schedule models.NutritionSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := schedule.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule.ID = ""
	schedule.CreatedBy = actor.ID
	schedule.CreatedAt = h.now().UnixMilli()

	id, err := h.store.Create(c.Request.Context(), repository.CollectionNutritionSchedules, schedule)
	if err != nil {
		h.storeError(c, "create nutrition schedule", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteNutritionSchedule removes a feeding slot permanently.
func (h *Handler) DeleteNutritionSchedule(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionDeleteNutritionSchedule, false) {
		h.denied(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), repository.CollectionNutritionSchedules, c.Param("id")); err != nil {
		h.storeError(c, "delete nutrition schedule", err)
		return
	}

	c.Status(http.StatusNoContent)
}
