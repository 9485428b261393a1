package models

import "time"

type OrderStatus string
type FulfillmentType string
type PaymentMethod string

const (
	// Order statuses, in kitchen-to-door order
	OrderStatusReceived  OrderStatus = "received"  // Order placed, kitchen notified
	OrderStatusPreparing OrderStatus = "preparing" // Being cooked
	OrderStatusReady     OrderStatus = "ready"     // Packed, awaiting pickup or courier
	OrderStatusEnRoute   OrderStatus = "en_route"  // Courier on the way
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before delivery

	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDineIn   FulfillmentType = "dine_in"

	PaymentCard PaymentMethod = "card"
	PaymentYape PaymentMethod = "yape"
	PaymentPlin PaymentMethod = "plin"
	PaymentCash PaymentMethod = "cash"
)

type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64         `json:"subtotal"`
	DeliveryFee     float64         `json:"delivery_fee"`
	Total           float64         `json:"total"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'received'" json:"status"`
	FulfillmentType FulfillmentType `gorm:"type:VARCHAR(20)" json:"fulfillment_type"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	DeliveryPhone   string          `json:"delivery_phone,omitempty"`
	PaymentMethod   PaymentMethod   `gorm:"type:VARCHAR(10)" json:"payment_method"`
	EstimatedTime   int             `gorm:"default:30" json:"estimated_time"` // minutes
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	OrderID         string   `gorm:"index" json:"order_id"`
	MenuItemID      string   `json:"menu_item_id"`
	MenuItem        MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"` // base price at checkout time
	Quantity        int      `json:"quantity"`
	Macros          Macros   `gorm:"embedded" json:"macros"` // customized macros snapshot
	CustomizedPrice float64  `json:"customized_price"`
}
