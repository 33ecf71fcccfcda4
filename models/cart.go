package models

import "time"

// CartItem is one (product, quantity) line owned by an anonymous session.
// At most one row exists per (session_id, product_id); adding the same
// product again bumps Quantity instead of inserting a duplicate.
type CartItem struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	SessionID string    `gorm:"index;not null" json:"session_id"`
	ProductID string    `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
