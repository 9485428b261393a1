package routes

import (
	adminControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/admin"
	orderControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/order"
	userControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/user"
	"github.com/SebastianPortocarrero/TFVitanza/middleware"
	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Staff can work the
// order queue; everything else is admin only.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken)

	staff := adminGroup.Group("/")
	staff.Use(middleware.RequireRoles(string(models.RoleAdmin), string(models.RoleStaff)))
	{
		staff.GET("/orders", orderControllers.GetAllOrdersHandler(deps.DB))
		staff.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
	}

	admin := adminGroup.Group("/")
	admin.Use(middleware.RequireRoles(string(models.RoleAdmin)))
	{
		admin.GET("/orders/export-excel", orderControllers.ExportOrdersToExcel(deps.DB))
		admin.GET("/users", userControllers.GetAllUsers(deps.DB))

		menuAdmin := admin.Group("/menu")
		{
			menuAdmin.POST("", adminControllers.CreateMenuItem(deps.DB))
			menuAdmin.PUT("/:id", adminControllers.UpdateMenuItem(deps.DB))
			menuAdmin.DELETE("/:id", adminControllers.DeleteMenuItem(deps.DB))
		}

		customizationAdmin := admin.Group("/customizations")
		{
			customizationAdmin.POST("", adminControllers.CreateCustomizationRule(deps.DB))
			customizationAdmin.DELETE("/:id", adminControllers.DeleteCustomizationRule(deps.DB))
		}

		challengeAdmin := admin.Group("/challenges")
		{
			challengeAdmin.GET("", adminControllers.ListChallenges(deps.DB))
			challengeAdmin.POST("", adminControllers.CreateChallenge(deps.DB))
			challengeAdmin.PUT("/:id/deactivate", adminControllers.DeactivateChallenge(deps.DB))
		}
	}
}
