package routes

import (
	"github.com/fashionstore/fashionstore-api/controllers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middlewares.RequireAuth(), controllers.GetCurrentUser)
		auth.PUT("/profile", middlewares.RequireAuth(), controllers.UpdateProfile)
	}
}
