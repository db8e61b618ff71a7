package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/cart"
	"github.com/RAJ-RHR/ecommerce/models"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// sessionKey pulls the cart session key from the request. Every client
// keeps one key for the lifetime of its browsing session.
func sessionKey(c *gin.Context) string {
	if key := c.GetHeader("X-Cart-Session"); key != "" {
		return key
	}
	return c.Query("session")
}

func respondCart(c *gin.Context, status int, s *cart.Session) {
	c.JSON(status, gin.H{
		"items":  s.Lines(),
		"totals": s.Totals(),
	})
}

// POST /cart/session
func NewCartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"session": uuid.NewString()})
	}
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}
		respondCart(c, http.StatusOK, carts.Session(key))
	}
}

// POST /cart/items
// Adds one unit of the product, snapshotting its current display fields.
func AddToCart(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		s := carts.Session(key)
		s.Add(cart.Product{
			ID:         strconv.Itoa(int(product.ID)),
			Name:       product.Name,
			Image:      product.Image,
			Category:   product.Category,
			Price:      product.Price,
			OfferPrice: product.OfferPrice,
		})
		respondCart(c, http.StatusOK, s)
	}
}

// POST /cart/items/:product_id/increase
func IncreaseQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		s := carts.Session(key)
		s.Increase(c.Param("product_id"))
		respondCart(c, http.StatusOK, s)
	}
}

// POST /cart/items/:product_id/decrease
// A line at quantity one is removed, not floored.
func DecreaseQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		s := carts.Session(key)
		s.Decrease(c.Param("product_id"))
		respondCart(c, http.StatusOK, s)
	}
}

// PUT /cart/items/:product_id
// Used by the checkout-page quantity steppers. Zero or below removes.
func SetQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := carts.Session(key)
		s.SetQuantity(c.Param("product_id"), input.Quantity)
		respondCart(c, http.StatusOK, s)
	}
}

// DELETE /cart/items/:product_id
func RemoveFromCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		s := carts.Session(key)
		s.Remove(c.Param("product_id"))
		respondCart(c, http.StatusOK, s)
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := sessionKey(c)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		s := carts.Session(key)
		s.Clear()
		respondCart(c, http.StatusOK, s)
	}
}
