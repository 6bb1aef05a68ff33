package routes

import (
	"net/http"
	"time"

	"pawcare/handlers"
	"pawcare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.LoginHandler)
		api.POST("/refresh", handlers.RefreshHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/logout", handlers.LogoutHandler)
	}
}

// RegisterServiceRoutes registers the catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine) {
	api := r.Group("/api/services")
	{
		api.GET("", handlers.ListServicesHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", handlers.CreateBookingHandler)
		api.GET("/:id", handlers.GetBookingHandler)
		api.PATCH("/:id/status", handlers.UpdateBookingStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterServiceRoutes(r)
	RegisterBookingRoutes(r)
}
