package models

import "gorm.io/gorm"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var ValidPaymentMethods = []string{"credit_card", "debit_card", "upi", "net_banking"}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Order is write-once apart from Status: items, total, address and payment
// method are frozen copies taken from the cart at checkout.
type Order struct {
	gorm.Model
	OrderNumber     string          `json:"orderNumber" gorm:"uniqueIndex;size:36"`
	UserID          uint            `json:"userId" gorm:"index"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
}

func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	for _, m := range ValidPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
