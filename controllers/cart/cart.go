package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/middleware"
	"github.com/Mo3az99/aura-shop-reborn/models"
	"github.com/Mo3az99/aura-shop-reborn/pricing"
)

var (
	ErrProductNotFound = errors.New("product does not exist")
	ErrItemNotFound    = errors.New("cart item not found")
)

// -------- Core Logic --------

// ListItems returns the session's cart rows with their product snapshots.
// No ordering is guaranteed.
func ListItems(db *gorm.DB, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("session_id = ?", sessionID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem merges a product into the session's cart: an existing row for the
// same product gets its quantity bumped by one, otherwise a new row starts
// at quantity one. The check and the write are two round trips, so two
// concurrent adds from duplicate tabs can briefly create two rows; last
// write wins and the store does not guard against it.
func AddItem(db *gorm.DB, sessionID, productID string) (models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrProductNotFound
		}
		return models.CartItem{}, err
	}

	var item models.CartItem
	err := db.Where("session_id = ? AND product_id = ?", sessionID, productID).First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, err
		}
		item = models.CartItem{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			ProductID: productID,
			Quantity:  1,
		}
		// Product is a read-only join; never written from here.
		if err := db.Omit("Product").Create(&item).Error; err != nil {
			return models.CartItem{}, err
		}
		item.Product = product
		return item, nil
	}

	item.Quantity++
	if err := db.Omit("Product").Save(&item).Error; err != nil {
		return models.CartItem{}, err
	}
	item.Product = product
	return item, nil
}

// SetQuantity updates a line owned by the session. A quantity of zero or
// less deletes the line; there is no clamp-to-one floor.
func SetQuantity(db *gorm.DB, sessionID, itemID string, quantity int) error {
	var item models.CartItem
	if err := db.Where("id = ? AND session_id = ?", itemID, sessionID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	if quantity <= 0 {
		return db.Delete(&item).Error
	}
	return db.Model(&item).Update("quantity", quantity).Error
}

// RemoveItem deletes a line owned by the session.
func RemoveItem(db *gorm.DB, sessionID, itemID string) error {
	result := db.Where("id = ? AND session_id = ?", itemID, sessionID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearCart deletes every line for the session.
func ClearCart(db *gorm.DB, sessionID string) error {
	return db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}

// -------- Handlers --------

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := ListItems(db, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		summary := pricing.Summarize(items)
		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"item_count": summary.ItemCount,
			"cart_total": summary.CartTotal,
		})
	}
}

// POST /cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddItem(db, middleware.SessionID(c), input.ProductID)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /cart/items/:itemID
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := SetQuantity(db, middleware.SessionID(c), c.Param("itemID"), *input.Quantity)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /cart/items/:itemID
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := RemoveItem(db, middleware.SessionID(c), c.Param("itemID"))
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ClearCart(db, middleware.SessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
