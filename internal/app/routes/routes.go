package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentportal/internal/app/controllers"
	"github.com/campushq/studentportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	portalController *controllers.PortalController,
	profileController *controllers.ProfileController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/", portalController.Home)
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		portal := authenticated.Group("/portal")
		{
			portal.GET("/", portalController.Index)
			// One dispatch route covers every section, the section-specific
			// pages differ only in the listing the service attaches.
			portal.GET("/:pageKey", portalController.GetPage)
		}

		authenticated.GET("/help/", portalController.Help)

		profile := authenticated.Group("/profile")
		{
			profile.GET("/", profileController.Get)
			profile.PUT("/", profileController.Update)
		}
		// Form-post alias for clients that cannot issue PUT.
		authenticated.POST("/edit-profile/", profileController.Update)

		// Staff-only aggregates
		dashboard := authenticated.Group("/admin-dashboard")
		dashboard.Use(authMiddleware.StaffRequired())
		{
			dashboard.GET("/", dashboardController.Overview)
		}
	}
}
