package routes

import (
	cartControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/cart"
	loyaltyControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/loyalty"
	userControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/user"
	"github.com/SebastianPortocarrero/TFVitanza/middleware"
	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes registers endpoints available to any valid session,
// guest or account: the cart and session preferences.
func SetupSessionRoutes(r *gin.Engine, deps Deps) {
	sessionGroup := r.Group("/")
	sessionGroup.Use(middleware.ValidateToken)
	{
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Carts))
			cartGroup.POST("/", cartControllers.AddItem(deps.DB, deps.Carts))
			cartGroup.PUT("/:entry_id", cartControllers.UpdateQuantity(deps.Carts))
			cartGroup.DELETE("/:entry_id", cartControllers.RemoveEntry(deps.Carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Carts))
		}

		sessionGroup.GET("/session/goal", userControllers.GetSessionGoal(deps.Local))
		sessionGroup.PUT("/session/goal", userControllers.SetSessionGoal(deps.Local))
	}
}

// SetupUserRoutes registers all "/user/*" endpoints. Requires a real account.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken, middleware.RequireAccount)
	{
		userGroup.GET("/", userControllers.GetUser(deps.DB))
		userGroup.PUT("/", userControllers.UpdateProfile(deps.DB))

		userGroup.GET("/challenges", loyaltyControllers.GetChallenges(deps.DB))
		userGroup.GET("/loyalty", loyaltyControllers.GetLoyaltyPoints(deps.DB))
	}
}
