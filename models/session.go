package models

import "time"

// Session records an anonymous cart-owning identity. Rows are advisory:
// carts are keyed by the session id string, so a client that minted its own
// id (cookie fallback) still works without a row here.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
