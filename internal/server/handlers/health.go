package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/access"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// ListHealthRecords returns all health records, newest first.
func (h *Handler) ListHealthRecords(c *gin.Context) {
	records := make([]models.HealthRecord, 0)
	h.list(c, repository.CollectionHealthRecords, &records)
}

// CreateHealthRecord logs a checkup, vaccination or treatment. The performer
// is always the acting user.
func (h *Handler) CreateHealthRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionCreateHealthRecord, false) {
		h.denied(c)
		return
	}

	var record models.HealthRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := record.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record.ID = ""
	record.PerformedBy = actor.ID
	record.CreatedAt = h.now().UnixMilli()

	id, err := h.store.Create(c.Request.Context(), repository.CollectionHealthRecords, record)
	if err != nil {
		h.storeError(c, "create health record", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteHealthRecord removes a health record permanently.
func (h *Handler) DeleteHealthRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionDeleteHealthRecord, false) {
		h.denied(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), repository.CollectionHealthRecords, c.Param("id")); err != nil {
		h.storeError(c, "delete health record", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthRecordStats returns the per-type census of health records.
func (h *Handler) HealthRecordStats(c *gin.Context) {
	records := make([]models.HealthRecord, 0)
	if err := h.store.Snapshot(c.Request.Context(), repository.CollectionHealthRecords, &records); err != nil {
		h.storeError(c, "health record stats", err)
		return
	}

	c.JSON(http.StatusOK, stats.ComputeHealthTypeCounts(records))
}
