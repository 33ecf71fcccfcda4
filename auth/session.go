package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Mo3az99/aura-shop-reborn/middleware"
	"github.com/Mo3az99/aura-shop-reborn/models"
)

const sessionTTL = 365 * 24 * time.Hour

// POST /auth/session
//
// Mints an anonymous session id for a new client. The id alone is enough to
// own a cart; the JWT is a convenience for clients that prefer an
// Authorization header over the cookie. When the sessions table is
// unreachable the id is still handed out, so a cart keeps working on a
// degraded store.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := uuid.NewString()

		session := models.Session{
			ID:        sessionID,
			ExpiresAt: time.Now().Add(sessionTTL),
		}
		_ = db.Create(&session).Error

		token, err := issueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.SetCookie(middleware.CookieSessionID, sessionID, int(sessionTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func issueSessionToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("SESSION_JWT_SECRET")))
}
