package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Mo3az99/aura-shop-reborn/controllers/cart"
	orderControllers "github.com/Mo3az99/aura-shop-reborn/controllers/order"
	productcontroller "github.com/Mo3az99/aura-shop-reborn/controllers/product"
	"github.com/Mo3az99/aura-shop-reborn/logger"
	"github.com/Mo3az99/aura-shop-reborn/middleware"
	"github.com/Mo3az99/aura-shop-reborn/notify"
)

// SetupStoreRoutes registers the storefront endpoints. Every route runs
// behind ResolveSession so cart and checkout are scoped to the caller's
// anonymous session.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, log *logger.Logger, notifier notify.Client) {
	store := r.Group("/")
	store.Use(middleware.ResolveSession)
	{
		// ──────────────── Browse Products ────────────────
		store.GET("/products", productcontroller.GetProducts(db))        // GET /products
		store.GET("/products/:id", productcontroller.GetProductByID(db)) // GET /products/:id

		// ──────────────── Shopping Cart ────────────────
		cartGroup := store.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))                         // GET /cart
			cartGroup.POST("/items", cartControllers.AddCartItem(db))              // POST /cart/items
			cartGroup.PUT("/items/:itemID", cartControllers.UpdateCartItem(db))    // PUT /cart/items/:itemID
			cartGroup.DELETE("/items/:itemID", cartControllers.DeleteCartItem(db)) // DELETE /cart/items/:itemID
			cartGroup.DELETE("", cartControllers.ClearCartHandler(db))             // DELETE /cart
		}

		// ──────────────── Checkout ────────────────
		store.POST("/orders", orderControllers.PlaceOrderHandler(db, notifier, log)) // POST /orders
	}
}
