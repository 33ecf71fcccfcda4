package middleware

import (
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieSessionID mirrors the storefront's durable cart_session_id key.
	CookieSessionID = "aura_session_id"
	cookieMaxAge    = 60 * 60 * 24 * 365

	ctxSessionID = "session_id"
)

// ResolveSession attaches an anonymous session id to the request. Sources,
// in order: X-Session-ID header, Authorization bearer token issued by
// /auth/session, the session cookie. When none is present a fresh id is
// minted and set as a cookie. A client that refuses the cookie keeps
// working with a new ephemeral id per request.
func ResolveSession(c *gin.Context) {
	sid := strings.TrimSpace(c.GetHeader("X-Session-ID"))

	if sid == "" {
		if token := bearerToken(c); token != "" {
			if id, err := sessionIDFromToken(token); err == nil {
				sid = id
			}
		}
	}

	if sid == "" {
		if cookie, err := c.Cookie(CookieSessionID); err == nil {
			sid = cookie
		}
	}

	if sid == "" {
		sid = uuid.NewString()
		c.SetCookie(CookieSessionID, sid, cookieMaxAge, "/", "", false, true)
	}

	c.Set(ctxSessionID, sid)
	c.Next()
}

// SessionID returns the session id resolved for this request.
func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func sessionIDFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("SESSION_JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sid, _ := claims["session_id"].(string)
	if sid == "" {
		return "", errors.New("token missing session_id")
	}
	return sid, nil
}
