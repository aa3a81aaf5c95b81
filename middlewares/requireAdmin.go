package middlewares

import (
	"net/http"

	"github.com/fashionstore/fashionstore-api/models"
	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(ContextRoleKey)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		role, ok := value.(string)
		if !ok || role != models.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized to update order status"})
			return
		}

		ctx.Next()
	}
}
