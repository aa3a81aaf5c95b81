package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fashionstore/fashionstore-api/initializers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/fashionstore/fashionstore-api/models"
	"github.com/fashionstore/fashionstore-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest wires an in-memory database and a full router for one test.
// The single-connection pool keeps every session on the same :memory: store.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	initializers.DB = db

	// Route registration mirrors the routes package, which cannot be
	// imported from in-package tests without a cycle.
	server := gin.New()
	server.GET("/", GetHome)

	auth := server.Group("/api/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)
	auth.GET("/me", middlewares.RequireAuth(), GetCurrentUser)
	auth.PUT("/profile", middlewares.RequireAuth(), UpdateProfile)

	products := server.Group("/api/products")
	products.GET("", GetProducts)
	products.GET("/:id", GetProduct)
	products.POST("", middlewares.RequireAuth(), middlewares.RequireAdmin(), CreateProduct)

	cart := server.Group("/api/cart", middlewares.RequireAuth())
	cart.GET("", GetCart)
	cart.POST("", AddCartItem)
	cart.PUT("/:itemId", UpdateCartItem)
	cart.DELETE("/:itemId", RemoveCartItem)

	orders := server.Group("/api/orders", middlewares.RequireAuth())
	orders.GET("", GetOrders)
	orders.GET("/:id", GetOrderById)
	orders.POST("", CreateOrder)
	orders.PATCH("/:id/status", middlewares.RequireAdmin(), UpdateOrderStatus)

	return server
}

func createTestUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Name:     "Test User",
		Email:    models.NormalizeEmail(email),
		Password: hashed,
		Role:     role,
	}
	require.NoError(t, initializers.DB.Create(&user).Error)

	token, err := generateJWT(user)
	require.NoError(t, err)
	return user, token
}

// signToken builds a token from arbitrary claims, for malformed-token cases.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func expiredToken(t *testing.T, userID uint) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"user_id": userID,
		"role":    models.RoleUser,
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
}

func doRequest(server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func addItem(t *testing.T, server *gin.Engine, token string, item gin.H) models.Cart {
	t.Helper()
	recorder := doRequest(server, http.MethodPost, "/api/cart", token, item)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var cart models.Cart
	decodeBody(t, recorder, &cart)
	return cart
}

var testAddress = gin.H{
	"street":  "221B Baker Street",
	"city":    "London",
	"state":   "Greater London",
	"zipCode": "NW1 6XE",
	"country": "UK",
}
