package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// DashboardStats returns the latest computed summary cells.
func (h *Handler) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Current().Stats)
}

// DashboardAlerts returns the latest computed alert list.
func (h *Handler) DashboardAlerts(c *gin.Context) {
	update := h.dashboard.Current()
	if update.Alerts == nil {
		update.Alerts = []stats.Alert{}
	}
	c.JSON(http.StatusOK, update.Alerts)
}

// StreamDashboard pushes recomputed stats and alerts to the client as
// server-sent events until the client disconnects.
func (h *Handler) StreamDashboard(c *gin.Context) {
	updates, cancel := h.dashboard.Subscribe()
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case update, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("dashboard", update)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
