package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.Handler, store repository.RecordStore, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(handlers.ActorMiddleware(store, logger))

	animals := api.Group("/animals")
	animals.GET("", handler.ListAnimals)
	animals.POST("", handler.CreateAnimal)
	animals.PATCH("/:id/status", handler.UpdateAnimalStatus)
	animals.DELETE("/:id", handler.DeleteAnimal)

	health := api.Group("/health-records")
	health.GET("", handler.ListHealthRecords)
	health.GET("/stats", handler.HealthRecordStats)
	health.POST("", handler.CreateHealthRecord)
	health.DELETE("/:id", handler.DeleteHealthRecord)

	milk := api.Group("/milk-records")
	milk.GET("", handler.ListMilkRecords)
	milk.GET("/metrics", handler.MilkMetrics)
	milk.POST("", handler.CreateMilkRecord)
	milk.DELETE("/:id", handler.DeleteMilkRecord)

	feed := api.Group("/feed-records")
	feed.GET("", handler.ListFeedRecords)
	feed.POST("", handler.CreateFeedRecord)
	feed.DELETE("/:id", handler.DeleteFeedRecord)

	nutrition := api.Group("/nutrition-schedules")
	nutrition.GET("", handler.ListNutritionSchedules)
	nutrition.POST("", handler.CreateNutritionSchedule)
	nutrition.DELETE("/:id", handler.DeleteNutritionSchedule)

	finance := api.Group("/financial-records")
	finance.GET("", handler.ListFinancialRecords)
	finance.GET("/metrics", handler.FinancialMetrics)
	finance.POST("", handler.CreateFinancialRecord)
	finance.DELETE("/:id", handler.DeleteFinancialRecord)

	users := api.Group("/users")
	users.GET("", handler.ListUsers)
	users.GET("/stats", handler.UserStats)
	users.PATCH("/:id/role", handler.UpdateUserRole)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", handler.DashboardStats)
	dashboard.GET("/alerts", handler.DashboardAlerts)
	dashboard.GET("/stream", handler.StreamDashboard)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
