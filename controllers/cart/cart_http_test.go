package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/middleware"
)

func cartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ResolveSession)
	r.GET("/cart", GetCart(db))
	r.POST("/cart/items", AddCartItem(db))
	return r
}

func TestGetCartReturnsDerivedView(t *testing.T) {
	db := openTestDB(t)
	p1 := seedProduct(t, db, "Linen Pants", "15.50", "")
	r := cartRouter(db)
	sessionID := uuid.NewString()

	// Two adds of the same product over HTTP.
	for i := 0; i < 2; i++ {
		body := strings.NewReader(`{"product_id":"` + p1.ID + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", sessionID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-ID", sessionID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items     []json.RawMessage `json:"items"`
		ItemCount int               `json:"item_count"`
		CartTotal string            `json:"cart_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.ItemCount)

	total, err := decimal.NewFromString(body.CartTotal)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("31.00").Equal(total), "got %s", body.CartTotal)
}

func TestGetCartIsSessionScoped(t *testing.T) {
	db := openTestDB(t)
	p1 := seedProduct(t, db, "Blazer", "700.00", "")
	r := cartRouter(db)

	owner := uuid.NewString()
	body := strings.NewReader(`{"product_id":"` + p1.ID + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", owner)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// A different session sees an empty cart.
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-ID", uuid.NewString())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		ItemCount int `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Zero(t, view.ItemCount)
}

func TestAddCartItemRejectsUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	r := cartRouter(db)

	body := strings.NewReader(`{"product_id":"` + uuid.NewString() + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", uuid.NewString())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
