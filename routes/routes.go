package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/cart"
)

// Deps carries everything the route groups need wired in.
type Deps struct {
	DB            *gorm.DB
	Carts         *cart.Manager
	UploadDir     string
	PublicBaseURL string
}

// SetupRoutes is the single entry-point that wires up the storefront,
// cart, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public storefront routes (no middleware)
	SetupShopRoutes(r, deps)

	// 2️⃣ Cart session routes
	SetupCartRoutes(r, deps)

	// 3️⃣ Admin routes (session-token protected)
	SetupAdminRoutes(r, deps)
}
