package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
)

const actorContextKey = "actor"

// actorHeader carries the authenticated user id. Authentication itself is an
// upstream concern; this middleware only resolves the role from the users
// collection keyed by that identity.
const actorHeader = "X-User-ID"

// ActorMiddleware resolves the acting user and rejects requests without a
// known identity.
func ActorMiddleware(store repository.RecordStore, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		userID := c.GetHeader(actorHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + actorHeader + " header"})
			return
		}

		users := make([]models.User, 0)
		if err := store.Snapshot(c.Request.Context(), repository.CollectionUsers, &users); err != nil {
			logger.Error("user lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "unable to resolve user"})
			return
		}

		for _, u := range users {
			if u.ID == userID {
				c.Set(actorContextKey, models.Actor{ID: u.ID, Email: u.Email, Role: u.Role})
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
	}
}
