package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // placed, awaiting dispatch
	OrderStatusShipped   OrderStatus = "Shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "Delivered" // customer received the order
	OrderStatusCancelled OrderStatus = "Cancelled" // cancelled before shipping
)

// Order is an immutable snapshot of a checked-out cart. Only Status is
// updated after creation.
type Order struct {
	ID             uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	NumericOrderID int64       `gorm:"uniqueIndex;not null" json:"numeric_order_id"`
	IdempotencyKey string      `gorm:"uniqueIndex;not null" json:"-"`
	CustomerName   string      `gorm:"not null" json:"name"`
	Address        string      `gorm:"not null" json:"address"`
	Phone          string      `gorm:"not null" json:"phone"`
	Email          string      `json:"email"`
	PaymentMethod  string      `gorm:"type:VARCHAR(20)" json:"payment_method"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total          float64     `json:"total"`
	TotalSavings   float64     `json:"total_savings"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`       // list price at time of order
	OfferPrice float64 `json:"offer_price"` // paid unit price
	Quantity  int     `json:"quantity"`
}

// Sequence backs the numeric order id counter. One row per counter name.
type Sequence struct {
	Name      string `gorm:"primaryKey"`
	LastValue int64  `gorm:"not null"`
}
