package routes

import (
	"github.com/fashionstore/fashionstore-api/controllers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.GET("", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderById)
		orders.POST("", controllers.CreateOrder)
		orders.PATCH("/:id/status", middlewares.RequireAdmin(), controllers.UpdateOrderStatus)
	}
}
