package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mo3az99/aura-shop-reborn/logger"
	"github.com/Mo3az99/aura-shop-reborn/models"
)

func testOrder() models.Order {
	return models.Order{
		OrderNumber:   "ORD-42",
		CustomerName:  "Sara Adel",
		CustomerEmail: "sara@example.com",
		CustomerPhone: "01098765432",
		ShippingAddress: models.ShippingAddress{
			Address:     "5 Nile Corniche",
			City:        "Maadi",
			Governorate: "Cairo",
		},
		TotalAmount: decimal.RequireFromString("105.00"),
		Items: []models.OrderItem{
			{Title: "Kimono", Quantity: 2, UnitPrice: decimal.RequireFromString("20.00")},
		},
	}
}

func TestOrderPlacedPostsAlert(t *testing.T) {
	var received sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(logger.NewNop(), Config{
		BaseURL:    srv.URL,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		UserID:     "user_test",
		ToEmail:    "owner@example.com",
	})

	require.NoError(t, client.OrderPlaced(context.Background(), testOrder()))

	assert.Equal(t, "service_test", received.ServiceID)
	assert.Equal(t, "template_test", received.TemplateID)
	assert.Equal(t, "user_test", received.UserID)
	assert.Equal(t, "owner@example.com", received.TemplateParams["to_email"])
	assert.Contains(t, received.TemplateParams["message"], "ORD-42")
	assert.Contains(t, received.TemplateParams["message"], "Sara Adel")
	assert.Contains(t, received.TemplateParams["message"], "105.00 EGP")
	assert.Contains(t, received.TemplateParams["message"], "Kimono")
}

func TestOrderPlacedNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(logger.NewNop(), Config{
		BaseURL:    srv.URL,
		ServiceID:  "s",
		TemplateID: "t",
		UserID:     "u",
	})
	assert.Error(t, client.OrderPlaced(context.Background(), testOrder()))
}

func TestNopDiscards(t *testing.T) {
	assert.NoError(t, Nop{}.OrderPlaced(context.Background(), testOrder()))
}
