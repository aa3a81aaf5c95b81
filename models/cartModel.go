package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID    uint    `json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
}

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Total  float64    `json:"total"`
}

// RecomputeTotal derives Total from the line items. It runs before every
// persist; a client-supplied total is never trusted.
func (c *Cart) RecomputeTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.Total = total
}

// FindItem locates a line item by its id. Returns nil if absent.
func (c *Cart) FindItem(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// MergeItem increments quantity when an item with the same (productId, size)
// already exists, otherwise appends the new item.
func (c *Cart) MergeItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].Size == item.Size {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

type AddCartItemData struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Image     string  `json:"image" binding:"required"`
	Size      string  `json:"size" binding:"required"`
}
