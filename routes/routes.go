package routes

import (
	"net/http"
	"time"

	"leadform/handlers"
	"leadform/middleware"
	"leadform/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFormRoutes registers the form-flow endpoints used by the landing pages.
func RegisterFormRoutes(r *gin.Engine, fh *handlers.FormHandler) {
	api := r.Group("/api/forms")
	{
		api.GET("/pages", fh.ListPages)
		api.POST("/:page/session", fh.StartSession)
		api.GET("/session/:sessionID", fh.GetSession)
		api.PUT("/session/:sessionID", fh.UpdateSession)
		api.POST("/session/:sessionID/advance", fh.AdvanceStep)
		api.PUT("/session/:sessionID/courses", fh.UpdateCourses)
		api.POST("/session/:sessionID/submit", fh.Submit)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler) {
	r.POST("/api/admin/login", ah.LoginHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/leads", ah.GetAllLeadsHandler)
		adminGroup.GET("/leads/:id", ah.GetLeadHandler)
		adminGroup.DELETE("/leads/:id", ah.DeleteLeadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, fh *handlers.FormHandler, ah *handlers.AdminHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFormRoutes(r, fh)
	RegisterAdminRoutes(r, ah)
	RegisterHealthRoute(r)
}
