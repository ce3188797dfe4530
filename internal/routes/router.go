package routes

import (
	"net/http"

	"github.com/AlgisPropolov/ad-rental-platform/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// Проба живости для балансировщика и мониторинга.
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit("300-M"))
	{
		RegisterAPIRoutes(api)
	}
}
