package routes

import (
	"net/http"
	"time"

	"glowbook/config"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowbook"})
	})
}

// RegisterScheduleRoutes registers the professional's calendar and discount
// configuration endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleProfessional))
		api.GET("/blocks", hb.ListCalendarBlocks)
		api.POST("/blocks", hb.CreateCalendarBlock)
		api.DELETE("/blocks/:blockID", hb.DeleteCalendarBlock)
		api.GET("/last-minute", hb.GetLastMinuteSettings)
		api.PUT("/last-minute", hb.SaveLastMinuteSettings)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
