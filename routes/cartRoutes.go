package routes

import (
	"github.com/fashionstore/fashionstore-api/controllers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/api/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddCartItem)
		cart.PUT("/:itemId", controllers.UpdateCartItem)
		cart.DELETE("/:itemId", controllers.RemoveCartItem)
	}
}
