package orderControllers

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/checkout"
	cartControllers "github.com/Mo3az99/aura-shop-reborn/controllers/cart"
	"github.com/Mo3az99/aura-shop-reborn/logger"
	"github.com/Mo3az99/aura-shop-reborn/middleware"
	"github.com/Mo3az99/aura-shop-reborn/models"
	"github.com/Mo3az99/aura-shop-reborn/notify"
	"github.com/Mo3az99/aura-shop-reborn/pricing"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidForm = errors.New("checkout form is invalid")
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// generateOrderNumber mirrors the storefront's human-readable reference:
// ORD- plus a bounded random suffix. Uniqueness is probabilistic only; the
// orders table does not enforce it.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d", rand.IntN(100000))
}

// -------- Core Logic --------

// PlaceOrder converts the session's cart into an order row. The order
// insert and the cart clear commit together in one transaction, so there is
// never a state where the order exists but the cart survives. On any
// persistence failure the cart is left untouched for a retry. The owner
// notification runs after commit and is advisory: its failure is logged and
// swallowed.
func PlaceOrder(db *gorm.DB, notifier notify.Client, log *logger.Logger, sessionID string, form checkout.Form) (*models.Order, error) {
	if !checkout.Valid(form) {
		return nil, ErrInvalidForm
	}

	items, err := cartControllers.ListItems(db, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shippingCost := pricing.ShippingCost(form.Governorate)
	totalAmount := pricing.CartTotal(items).Add(shippingCost)

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: item.ProductID,
			Title:     item.Product.Title,
			UnitPrice: item.Product.Price,
			SalePrice: item.Product.SalePrice,
			ImageURL:  item.Product.ImageURL,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		ID:            uuid.NewString(),
		OrderNumber:   generateOrderNumber(),
		CustomerName:  strings.TrimSpace(form.FirstName + " " + form.LastName),
		CustomerEmail: form.Email,
		CustomerPhone: form.Phone,
		ShippingAddress: models.ShippingAddress{
			Address:     form.Address,
			Apartment:   form.Apartment,
			City:        form.City,
			Governorate: form.Governorate,
			PostalCode:  form.PostalCode,
		},
		Items:        orderItems,
		ShippingCost: shippingCost,
		TotalAmount:  totalAmount,
		Status:       models.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := notifier.OrderPlaced(ctx, order); err != nil {
			log.Warn("order alert failed", "order_number", order.OrderNumber, "error", err.Error())
		}
	}()

	return &order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB, notifier notify.Client, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form checkout.Form
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if fieldErrs := checkout.Validate(form); len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}

		order, err := PlaceOrder(db, notifier, log, middleware.SessionID(c), form)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Error("order placement failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? OR order_number = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", c.Param("orderID")).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
