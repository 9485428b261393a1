package routes

import (
	menuControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/menu"
	"github.com/gin-gonic/gin"
)

// SetupMenuRoutes registers the public catalog endpoints.
func SetupMenuRoutes(r *gin.Engine, deps Deps) {
	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("/", menuControllers.GetMenuItems(deps.DB))
		menuGroup.GET("/customizations", menuControllers.GetCustomizationRules(deps.DB))
		menuGroup.GET("/:id", menuControllers.GetMenuItemByID(deps.DB))
	}
}
