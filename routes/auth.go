package routes

import (
	"github.com/SebastianPortocarrero/TFVitanza/auth"
	"github.com/SebastianPortocarrero/TFVitanza/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB, deps.Carts))
		authGroup.POST("/login", auth.Login(deps.DB, deps.Carts))
		authGroup.POST("/guest", auth.CreateGuestSession(deps.DB))

		authGroup.POST("/logout", middleware.ValidateToken, auth.Logout(deps.Carts))
	}
}
