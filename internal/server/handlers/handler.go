package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/dashboard"
)

// Handler serves the record collections and the dashboard endpoints.
type Handler struct {
	store     repository.RecordStore
	dashboard *dashboard.Service
	logger    *zap.Logger
	now       func() time.Time
}

// New constructs the HTTP handler adapter.
func New(store repository.RecordStore, dash *dashboard.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, dashboard: dash, logger: logger, now: time.Now}
}

// actorFrom returns the identity resolved by the actor middleware. Routes
// behind the middleware always have one.
func actorFrom(c *gin.Context) models.Actor {
	actor, _ := c.MustGet(actorContextKey).(models.Actor)
	return actor
}

func (h *Handler) denied(c *gin.Context) {
	actor := actorFrom(c)
	h.logger.Warn("action denied by policy",
		zap.String("actor", actor.ID),
		zap.String("role", string(actor.Role)),
		zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusForbidden, gin.H{"error": "your role does not permit this action"})
}

func (h *Handler) storeError(c *gin.Context, op string, err error) {
	h.logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func (h *Handler) list(c *gin.Context, collection string, out any) {
	if err := h.store.Snapshot(c.Request.Context(), collection, out); err != nil {
		h.storeError(c, "list "+collection, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
