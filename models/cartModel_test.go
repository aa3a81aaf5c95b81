package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func item(id uint, productID uint, size string, price float64, quantity int) CartItem {
	return CartItem{
		Model:     gorm.Model{ID: id},
		ProductID: productID,
		Name:      "item",
		Price:     price,
		Quantity:  quantity,
		Image:     "img",
		Size:      size,
	}
}

func TestRecomputeTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			item(1, 1, "M", 100, 2),
			item(2, 2, "32", 50, 1),
		},
		Total: 9999, // stale value must be overwritten
	}

	cart.RecomputeTotal()
	assert.Equal(t, 250.0, cart.Total)
}

func TestRecomputeTotal_EmptyCart(t *testing.T) {
	cart := Cart{Total: 100}
	cart.RecomputeTotal()
	assert.Zero(t, cart.Total)
}

func TestMergeItem_SameProductAndSize(t *testing.T) {
	cart := Cart{Items: []CartItem{item(1, 1, "M", 100, 2)}}

	cart.MergeItem(item(0, 1, "M", 100, 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestMergeItem_DifferentSizeAppends(t *testing.T) {
	cart := Cart{Items: []CartItem{item(1, 1, "M", 100, 1)}}

	cart.MergeItem(item(0, 1, "L", 100, 1))

	assert.Len(t, cart.Items, 2)
}

func TestFindItem(t *testing.T) {
	cart := Cart{Items: []CartItem{item(7, 1, "M", 100, 1)}}

	require.NotNil(t, cart.FindItem(7))
	assert.Nil(t, cart.FindItem(8))
}

func TestVocabularies(t *testing.T) {
	for _, status := range ValidOrderStatuses {
		assert.True(t, IsValidOrderStatus(status))
	}
	assert.False(t, IsValidOrderStatus("Delivered"))
	assert.False(t, IsValidOrderStatus(""))

	for _, method := range ValidPaymentMethods {
		assert.True(t, IsValidPaymentMethod(method))
	}
	assert.False(t, IsValidPaymentMethod("cheque"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  ADA@Example.COM "))
}
