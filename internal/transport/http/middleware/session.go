package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ContextSessionIDKey = "session_id"

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionToken guarantees every request carries a session identifier. A valid
// signed cookie is reused; anything else gets a fresh ID and a new cookie.
// The ID is opaque to the client; only the server-side store gives it meaning.
func SessionToken(cookieName, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
			sessionID = parseSessionToken(secret, raw)
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			token, err := issueSessionToken(secret, sessionID, ttl)
			if err == nil {
				c.SetCookie(cookieName, token, int(ttl.Seconds()), "/", "", false, true)
			}
		}
		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

func SessionIDFromContext(c *gin.Context) string {
	if v, ok := c.Get(ContextSessionIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func issueSessionToken(secret, sessionID string, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseSessionToken(secret, raw string) string {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	return claims.SessionID
}
