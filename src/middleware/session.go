package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed admin session token
const SessionCookieName = "admin_session"

// SessionTTL bounds how long an admin session stays valid. Expiry is
// time-based only; there is no server-side session record to destroy.
const SessionTTL = 24 * time.Hour

// LoginPath is where unauthorized requests to guarded routes are sent
const LoginPath = "/admin/login"

// sessionSecret should be loaded from environment via config
var sessionSecret string

// SetSessionSecret initializes the session signing secret from config
func SetSessionSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("SESSION_SECRET cannot be empty")
	}
	if len(secret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters long")
	}
	sessionSecret = secret
	return nil
}

// SessionClaims represents the signed admin session
type SessionClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed session token for the admin
func GenerateSessionToken(username string) (string, error) {
	claims := SessionClaims{
		Username: username,
		IsAdmin:  true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "portfolio-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// ValidateSessionToken verifies a session token and returns its claims
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(sessionSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !claims.IsAdmin {
		return nil, fmt.Errorf("token does not carry admin capability")
	}

	return claims, nil
}

// SetSessionCookie attaches a fresh session cookie to the response
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		SessionCookieName,
		token,
		int(SessionTTL.Seconds()),
		"/",
		"",
		false, // Secure
		true,  // HttpOnly
	)
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// RequireAdmin gates admin routes. Requests without a valid unexpired
// session cookie are redirected to the login page rather than given an
// error status; the guarded handler never runs for them.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		claims, err := ValidateSessionToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
