package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/logger"
	"github.com/Mo3az99/aura-shop-reborn/notify"
)

// SetupRoutes is the single entry-point that wires up Auth, Store, and Admin
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, log *logger.Logger, notifier notify.Client) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Storefront routes (session-scoped)
	SetupStoreRoutes(r, db, log, notifier)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
