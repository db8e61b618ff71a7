package adminController

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/RAJ-RHR/ecommerce/middleware"
)

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the back-office password and hands out a session
// token that the middleware keeps refreshing while the admin is active.
// POST /admin/login
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
			return
		}

		expected := os.Getenv("ADMIN_PASSWORD")
		if expected == "" || subtle.ConstantTimeCompare([]byte(input.Password), []byte(expected)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}

		token, err := middleware.IssueAdminToken()
		if err != nil {
			log.Println("❌ Failed to issue admin token:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_in": int(middleware.AdminSessionTTL.Seconds()),
		})
	}
}
