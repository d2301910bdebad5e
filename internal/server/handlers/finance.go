package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/access"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// ListFinancialRecords returns all transactions, newest first.
func (h *Handler) ListFinancialRecords(c *gin.Context) {
	records := make([]models.FinancialRecord, 0)
	h.list(c, repository.CollectionFinancialRecords, &records)
}

// CreateFinancialRecord logs an income or expense transaction.
func (h *Handler) CreateFinancialRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionCreateFinancialRecord, false) {
		h.denied(c)
		return
	}

	var record models.FinancialRecord
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

	id, err := h.store.Create(c.Request.Context(), repository.CollectionFinancialRecords, record)
	if err != nil {
		h.storeError(c, "create financial record", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteFinancialRecord removes a transaction permanently.
func (h *Handler) DeleteFinancialRecord(c *gin.Context) {
	actor := actorFrom(c)
	if !access.CanPerform(actor.Role, access.ActionDeleteFinancialRecord, false) {
		h.denied(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), repository.CollectionFinancialRecords, c.Param("id")); err != nil {
		h.storeError(c, "delete financial record", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FinancialMetrics returns the current month's revenue, expenses, net profit
// and the outstanding-bills estimate.
func (h *Handler) FinancialMetrics(c *gin.Context) {
	records := make([]models.FinancialRecord, 0)
	if err := h.store.Snapshot(c.Request.Context(), repository.CollectionFinancialRecords, &records); err != nil {
		h.storeError(c, "financial metrics", err)
		return
	}

	c.JSON(http.StatusOK, stats.ComputeFinancialMetrics(records, h.now()))
}
