package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Mo3az99/aura-shop-reborn/logger"
	"github.com/Mo3az99/aura-shop-reborn/models"
)

// Client delivers a free-text alert about a newly placed order to the shop
// owner. Delivery is advisory: callers treat errors as log-only.
type Client interface {
	OrderPlaced(ctx context.Context, order models.Order) error
}

type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	UserID     string
	ToEmail    string
	Timeout    time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		BaseURL:    strings.TrimSpace(os.Getenv("EMAILJS_BASE_URL")),
		ServiceID:  strings.TrimSpace(os.Getenv("EMAILJS_SERVICE_ID")),
		TemplateID: strings.TrimSpace(os.Getenv("EMAILJS_TEMPLATE_ID")),
		UserID:     strings.TrimSpace(os.Getenv("EMAILJS_USER_ID")),
		ToEmail:    strings.TrimSpace(os.Getenv("ORDER_ALERT_EMAIL")),
		Timeout:    10 * time.Second,
	}
}

// NewFromEnv builds an EmailJS-backed client, or a no-op client when the
// integration is not configured. A missing notifier must never block orders.
func NewFromEnv(log *logger.Logger) Client {
	cfg := ConfigFromEnv()
	if cfg.ServiceID == "" || cfg.TemplateID == "" || cfg.UserID == "" {
		log.Warn("EmailJS not configured, order alerts disabled")
		return Nop{}
	}
	return New(log, cfg)
}

func New(log *logger.Logger, cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.emailjs.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "EmailJSClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *client) OrderPlaced(ctx context.Context, order models.Order) error {
	cart, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("New Order %s: %s, %s, %s, %s, %s, %s, Total: %s EGP, Cart: %s",
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.ShippingAddress.Address,
		order.ShippingAddress.City,
		order.ShippingAddress.Governorate,
		order.TotalAmount.StringFixed(2),
		cart,
	)

	body, err := json.Marshal(sendRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.UserID,
		TemplateParams: map[string]string{
			"to_email": c.cfg.ToEmail,
			"message":  msg,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("emailjs http %d", resp.StatusCode)
	}
	return nil
}

// Nop discards order alerts.
type Nop struct{}

func (Nop) OrderPlaced(context.Context, models.Order) error { return nil }
