package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting processing
	OrderStatusCompleted OrderStatus = "completed" // Fulfilled and closed
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// ShippingAddress is embedded in Order, mirroring the checkout form.
type ShippingAddress struct {
	Address     string `json:"address"`
	Apartment   string `json:"apartment"`
	City        string `json:"city"`
	Governorate string `json:"governorate"`
	PostalCode  string `json:"postal_code"`
}

// Order is written exactly once per successful checkout. TotalAmount is
// captured at submission time and never recomputed; only Status moves
// afterwards, driven by back-office processes.
type Order struct {
	ID              string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderNumber     string          `gorm:"index;not null" json:"order_number"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"not null" json:"customer_email"`
	CustomerPhone   string          `gorm:"not null" json:"customer_phone"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(12,2)" json:"shipping_cost"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem snapshots a cart line at checkout so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ID        string              `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID   string              `gorm:"index;type:uuid" json:"order_id"`
	ProductID string              `gorm:"type:uuid" json:"product_id"`
	Title     string              `json:"title"`
	UnitPrice decimal.Decimal     `gorm:"type:decimal(12,2)" json:"unit_price"`
	SalePrice decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	ImageURL  string              `json:"image_url"`
	Quantity  int                 `json:"quantity"`
}
