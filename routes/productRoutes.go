package routes

import (
	"github.com/fashionstore/fashionstore-api/controllers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/api/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/:id", controllers.GetProduct)
		products.POST("", middlewares.RequireAuth(), middlewares.RequireAdmin(), controllers.CreateProduct)
	}
}
