package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/middleware"
	"github.com/Mo3az99/aura-shop-reborn/models"
)

func TestCreateSession(t *testing.T) {
	t.Setenv("SESSION_JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:auth_session?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Session{}))

	r := gin.New()
	r.POST("/auth/session", CreateSession(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SessionID string    `json:"session_id"`
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.SessionID)
	assert.NotEmpty(t, body.Token)
	assert.True(t, body.ExpiresAt.After(time.Now()))

	var session models.Session
	require.NoError(t, db.First(&session, "id = ?", body.SessionID).Error)

	// The cookie carries the same id the body reports.
	var cookieValue string
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieSessionID {
			cookieValue = c.Value
		}
	}
	assert.Equal(t, body.SessionID, cookieValue)
}
