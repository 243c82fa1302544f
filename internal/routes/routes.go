package routes

import (
	"github.com/gin-gonic/gin"

	"eventcms_backend/internal/handlers"
	"eventcms_backend/internal/middleware"
	"eventcms_backend/internal/services"
)

// RegisterRoutes wires every HTTP route. Public content endpoints live
// under /api/v1/public, management endpoints under /api/v1/admin behind
// the auth middleware.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, authService services.AuthService) {
	api := router.Group("/api/v1")

	registerPublicRoutes(api, appHandlers)

	auth := api.Group("/auth")
	{
		auth.POST("/login", appHandlers.AuthHandler.Login)

		authed := auth.Group("", middleware.RequireAuth(authService))
		{
			authed.POST("/logout", appHandlers.AuthHandler.Logout)
			authed.GET("/me", appHandlers.AuthHandler.Me)
			authed.PUT("/me", appHandlers.AuthHandler.UpdateProfile)
			authed.POST("/change-password", appHandlers.AuthHandler.ChangePassword)
		}
	}

	admin := api.Group("/admin", middleware.RequireAuth(authService))
	registerAdminRoutes(admin, appHandlers)
}
