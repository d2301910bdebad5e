package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/access"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// ListMilkRecords returns all milk records, newest first.
func (h *Handler) ListMilkRecords(c *gin.Context) {
	records := make([]models.MilkRecord, 0)
	h.list(c, repository.CollectionMilkRecords, &records)
}

// CreateMilkRecord logs a milking entry.
func (h *Handler) CreateMilkRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionCreateMilkRecord, false) {
		h.denied(c)
		return
	}

	var record models.MilkRecord
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

	id, err := h.store.Create(c.Request.Context(), repository.CollectionMilkRecords, record)
	if err != nil {
		h.storeError(c, "create milk record", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteMilkRecord removes a milk record permanently.
func (h *Handler) DeleteMilkRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionDeleteMilkRecord, false) {
		h.denied(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), repository.CollectionMilkRecords, c.Param("id")); err != nil {
		h.storeError(c, "delete milk record", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MilkMetrics returns the production summary over the full snapshot.
func (h *Handler) MilkMetrics(c *gin.Context) {
	records := make([]models.MilkRecord, 0)
	if err := h.store.Snapshot(c.Request.Context(), repository.CollectionMilkRecords, &records); err != nil {
		h.storeError(c, "milk metrics", err)
		return
	}

	c.JSON(http.StatusOK, stats.ComputeMilkMetrics(records))
}
