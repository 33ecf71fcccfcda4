package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string              `gorm:"primaryKey;type:uuid" json:"id"`
	Title         string              `gorm:"not null" json:"title"`
	Description   string              `json:"description"`
	Category      string              `gorm:"index" json:"category"`
	Price         decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"price"`
	SalePrice     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	ImageURL      string              `json:"image_url"`
	StockQuantity int                 `json:"stock_quantity"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`
}
