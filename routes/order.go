package routes

import (
	orderControllers "github.com/SebastianPortocarrero/TFVitanza/controllers/order"
	"github.com/SebastianPortocarrero/TFVitanza/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orderGroup := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orderGroup.GET("/ws", orderControllers.OrderWebSocketHandler)

		authed := orderGroup.Group("/")
		authed.Use(middleware.ValidateToken, middleware.RequireAccount)
		{
			authed.POST("/place", orderControllers.PlaceOrderHandler(deps.DB, deps.Carts))
			authed.GET("/mine", orderControllers.GetUserOrdersHandler(deps.DB))
			authed.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.DB))
		}
	}
}
