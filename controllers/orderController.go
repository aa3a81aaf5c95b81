package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/fashionstore/fashionstore-api/initializers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/fashionstore/fashionstore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgOrderNotFound       = "Order not found"
	msgMissingOrderFields  = "Missing required fields"
	msgInvalidAddress      = "Invalid shipping address"
	msgInvalidPayment      = "Invalid payment method"
	msgCartEmpty           = "Cart is empty"
	msgInvalidCartItems    = "Invalid cart items"
	msgEmptyOrder          = "Order must contain at least one item"
	msgNonPositiveTotal    = "Order total must be greater than 0"
	msgFailedToCreateOrder = "Error creating order"
	msgFailedToFetchOrders = "Error fetching orders"
	msgInvalidStatus       = "Invalid status"
)

// checkoutLocks serialises the cart-read / order-write / cart-clear span per
// user. Two concurrent checkouts from the same user would otherwise both read
// the same cart and each produce an order from it. This is a strengthening
// over plain last-writer-wins, not a behavior change.
var checkoutLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func checkoutLock(userID uint) *sync.Mutex {
	checkoutLocks.mu.Lock()
	defer checkoutLocks.mu.Unlock()
	if checkoutLocks.locks == nil {
		checkoutLocks.locks = make(map[uint]*sync.Mutex)
	}
	lock, ok := checkoutLocks.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		checkoutLocks.locks[userID] = lock
	}
	return lock
}

type CheckoutData struct {
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                  `json:"paymentMethod"`
}

// missingAddressFields names the absent shipping address subfields.
func missingAddressFields(address *models.ShippingAddress) []string {
	var missing []string
	if address.Street == "" {
		missing = append(missing, "street")
	}
	if address.City == "" {
		missing = append(missing, "city")
	}
	if address.State == "" {
		missing = append(missing, "state")
	}
	if address.ZipCode == "" {
		missing = append(missing, "zipCode")
	}
	if address.Country == "" {
		missing = append(missing, "country")
	}
	return missing
}

// cartItemsValid guards against corrupted persisted state: every line item in
// the cart must carry all six snapshot fields before it can become an order.
func cartItemsValid(items []models.CartItem) bool {
	for _, item := range items {
		if item.ProductID == 0 || item.Name == "" || item.Price == 0 ||
			item.Quantity == 0 || item.Image == "" || item.Size == "" {
			return false
		}
	}
	return true
}

// CreateOrder converts the user's cart into an immutable order. The order
// insert is the commit point; the cart clear afterwards is best-effort and its
// failure never rolls back or hides an already persisted order.
func CreateOrder(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var checkoutData CheckoutData
	if err := ctx.ShouldBindJSON(&checkoutData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if checkoutData.ShippingAddress == nil || checkoutData.PaymentMethod == "" {
		details := gin.H{}
		if checkoutData.ShippingAddress == nil {
			details["shippingAddress"] = "Shipping address is required"
		}
		if checkoutData.PaymentMethod == "" {
			details["paymentMethod"] = "Payment method is required"
		}
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgMissingOrderFields,
			"details": details,
		})
		return
	}

	if missing := missingAddressFields(checkoutData.ShippingAddress); len(missing) > 0 {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgInvalidAddress,
			"details": "Missing fields: " + strings.Join(missing, ", "),
		})
		return
	}

	if !models.IsValidPaymentMethod(checkoutData.PaymentMethod) {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgInvalidPayment,
			"details": gin.H{
				"paymentMethod": "Payment method must be one of: " + strings.Join(models.ValidPaymentMethods, ", "),
			},
		})
		return
	}

	lock := checkoutLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := findCart(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
		} else {
			log.Println("Get cart error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		}
		return
	}

	if len(cart.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		return
	}

	if !cartItemsValid(cart.Items) {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgInvalidCartItems,
			"details": "Some items in your cart are invalid",
		})
		return
	}

	// Snapshot: the order freezes the cart's denormalized item fields and the
	// current total. It is never re-derived from the catalog or cart again.
	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		OrderNumber:     uuid.NewString(),
		UserID:          userID,
		Items:           orderItems,
		Total:           cart.Total,
		ShippingAddress: *checkoutData.ShippingAddress,
		PaymentMethod:   checkoutData.PaymentMethod,
		Status:          models.OrderStatusPending,
	}

	if len(order.Items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgEmptyOrder)
		return
	}
	if order.Total <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgNonPositiveTotal)
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Order commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	// The order is durably committed. A failed cart clear leaves a stale cart
	// behind, which is recoverable; it must not fail the response.
	if err := clearCart(&cart); err != nil {
		log.Printf("Order %d created, but cart clear failed for user %d: %v", order.ID, userID, err)
	}

	ctx.JSON(http.StatusCreated, order)
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&orders)
	if result.Error != nil {
		log.Println("Fetch orders error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrderById returns a single order, own orders only. Someone else's order
// id is indistinguishable from a missing one.
func GetOrderById(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	var order models.Order
	result := initializers.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Fetch order error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// UpdateOrderStatus overwrites an order's status. Admin-only via middleware;
// any valid status may follow any other — there is deliberately no transition
// graph.
func UpdateOrderStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.IsValidOrderStatus(statusData.Status) {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgInvalidStatus,
			"details": "Status must be one of: " + strings.Join(models.ValidOrderStatuses, ", "),
		})
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	var order models.Order
	result := initializers.DB.Preload("Items").First(&order, orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Fetch order error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		}
		return
	}

	order.Status = statusData.Status
	if err := initializers.DB.Model(&order).Update("status", order.Status).Error; err != nil {
		log.Println("Order status update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Error updating order status")
		return
	}

	ctx.JSON(http.StatusOK, order)
}
