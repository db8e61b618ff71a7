package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminSessionTTL is the inactivity window: each authenticated request
// refreshes the session for this long. Not a hardened security boundary,
// just the back-office gate.
const AdminSessionTTL = 5 * time.Minute

func adminSecret() []byte {
	return []byte(os.Getenv("ADMIN_JWT_SECRET"))
}

// IssueAdminToken signs a fresh admin session token.
func IssueAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(AdminSessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminSecret())
}

// ValidateAdminSession gates /admin/* routes. Every accepted request gets
// a reissued token in X-Admin-Token, so the session expires only after
// five idle minutes.
func ValidateAdminSession(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return adminSecret(), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["admin"] != true {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	// Activity refreshes the inactivity window.
	if fresh, err := IssueAdminToken(); err == nil {
		c.Header("X-Admin-Token", fresh)
	}

	c.Next()
}
