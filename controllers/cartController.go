package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/fashionstore/fashionstore-api/initializers"
	"github.com/fashionstore/fashionstore-api/middlewares"
	"github.com/fashionstore/fashionstore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgCartNotFound      = "Cart not found"
	msgItemNotFound      = "Item not found in cart"
	msgMissingItemFields = "Please provide all required fields"
	msgInvalidQuantity   = "Please provide a valid quantity"
	msgFailedToFetchCart = "Error fetching cart"
	msgFailedToSaveCart  = "Error updating cart"
)

// findCart loads a user's cart with its items. Returns gorm.ErrRecordNotFound
// when the user has no cart yet.
func findCart(userID uint) (models.Cart, error) {
	var cart models.Cart
	result := initializers.DB.
		Where("user_id = ?", userID).
		Preload("Items").
		First(&cart)
	return cart, result.Error
}

// findOrCreateCart lazily creates an empty cart on first access.
func findOrCreateCart(userID uint) (models.Cart, error) {
	cart, err := findCart(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID, Items: []models.CartItem{}}
		if result := initializers.DB.Create(&cart); result.Error != nil {
			return cart, result.Error
		}
		return cart, nil
	}
	return cart, err
}

// saveCartTotal recomputes the derived total from the cart's items and
// persists it. The total is never taken from client input.
func saveCartTotal(cart *models.Cart) error {
	cart.RecomputeTotal()
	return initializers.DB.Model(cart).Update("total", cart.Total).Error
}

// clearCart empties the item collection and zeroes the total. The cart row
// itself survives.
func clearCart(cart *models.Cart) error {
	if err := initializers.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	cart.Items = []models.CartItem{}
	return saveCartTotal(cart)
}

// GetCart returns the user's cart, creating an empty one if none exists.
func GetCart(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := findOrCreateCart(userID)
	if err != nil {
		log.Println("Get cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// AddCartItem appends a line item, merging by (productId, size) when the pair
// is already present.
func AddCartItem(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var itemData models.AddCartItemData
	if err := ctx.ShouldBindJSON(&itemData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingItemFields)
		return
	}

	cart, err := findOrCreateCart(userID)
	if err != nil {
		log.Println("Get cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == itemData.ProductID && cart.Items[i].Size == itemData.Size {
			cart.Items[i].Quantity += itemData.Quantity
			if err := initializers.DB.Model(&cart.Items[i]).Update("quantity", cart.Items[i].Quantity).Error; err != nil {
				log.Println("Cart item update error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
				return
			}
			merged = true
			break
		}
	}

	if !merged {
		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: itemData.ProductID,
			Name:      itemData.Name,
			Price:     itemData.Price,
			Quantity:  itemData.Quantity,
			Image:     itemData.Image,
			Size:      itemData.Size,
		}
		if err := initializers.DB.Create(&item).Error; err != nil {
			log.Println("Cart item create error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
			return
		}
		cart.Items = append(cart.Items, item)
	}

	if err := saveCartTotal(&cart); err != nil {
		log.Println("Cart total update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// RemoveCartItem deletes a line item by id. A missing item id is a no-op,
// not an error; a missing cart is.
func RemoveCartItem(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

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

	// An id that matches nothing in the cart is a no-op, not an error; an
	// unparseable one matches nothing by definition.
	itemID, parseErr := strconv.Atoi(ctx.Param("itemId"))
	if parseErr == nil {
		if item := cart.FindItem(uint(itemID)); item != nil {
			if err := initializers.DB.Delete(item).Error; err != nil {
				log.Println("Cart item delete error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
				return
			}
			remaining := cart.Items[:0]
			for _, existing := range cart.Items {
				if existing.ID != uint(itemID) {
					remaining = append(remaining, existing)
				}
			}
			cart.Items = remaining
		}
	}

	if err := saveCartTotal(&cart); err != nil {
		log.Println("Cart total update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// UpdateCartItem overwrites a line item's quantity.
func UpdateCartItem(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	type QuantityData struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}

	var quantityData QuantityData
	if err := ctx.ShouldBindJSON(&quantityData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}

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

	// An unparseable id cannot match any line item.
	var item *models.CartItem
	if itemID, parseErr := strconv.Atoi(ctx.Param("itemId")); parseErr == nil {
		item = cart.FindItem(uint(itemID))
	}
	if item == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}

	item.Quantity = quantityData.Quantity
	if err := initializers.DB.Model(item).Update("quantity", item.Quantity).Error; err != nil {
		log.Println("Cart item update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	if err := saveCartTotal(&cart); err != nil {
		log.Println("Cart total update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	ctx.JSON(http.StatusOK, cart)
}
