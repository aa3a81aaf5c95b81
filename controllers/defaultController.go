package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Fashion Store API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account
- GET "/api/auth/me" - Get current user profile
- PUT "/api/auth/profile" - Update user profile

PRODUCT
- GET "/api/products" - Get all products
- GET "/api/products/{id}" - Get product by ID
- POST "/api/products" - Create new product (admin)

CART
- GET "/api/cart" - Get user's cart
- POST "/api/cart" - Add item to cart
- PUT "/api/cart/{itemId}" - Update item quantity
- DELETE "/api/cart/{itemId}" - Remove item from cart

ORDER
- GET "/api/orders" - Get user's orders
- GET "/api/orders/{id}" - Get order by ID
- POST "/api/orders" - Create order from cart
- PATCH "/api/orders/{id}/status" - Update order status (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
