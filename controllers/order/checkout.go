package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/cart"
	"github.com/RAJ-RHR/ecommerce/models"
)

// Indian mobile numbers only, same rule the storefront form enforces.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

var paymentMethods = map[string]bool{
	"cod":  true,
	"upi":  true,
	"card": true,
}

// Numeric order ids start above this floor so they read like order
// numbers, not row counts.
const orderNumberFloor = 1000

type CheckoutRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
	IdempotencyKey string `json:"idempotency_key" binding:"required,uuid"`
}

// PlaceOrder freezes the cart into an order row. The write happens first
// and the cart is cleared only after it is confirmed; a failed write
// leaves the cart intact so the client can retry. A retried submission
// with the same idempotency key returns the order already created.
func PlaceOrder(db *gorm.DB, s *cart.Session, req CheckoutRequest) (*models.Order, error) {
	// Retried request after a success (the cart is already cleared by
	// then): hand back the existing order before looking at the cart.
	var existing models.Order
	err := db.Preload("Items").
		Where("idempotency_key = ?", req.IdempotencyKey).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	lines := s.Lines()
	if len(lines) == 0 {
		return nil, errors.New("cart is empty")
	}
	totals := s.Totals()

	var placed models.Order
	created := false

	submit := func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			// Double-click racing this request: hand back its order.
			var racing models.Order
			err := tx.Preload("Items").
				Where("idempotency_key = ?", req.IdempotencyKey).
				First(&racing).Error
			if err == nil {
				placed = racing
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			numericID, err := nextOrderNumber(tx)
			if err != nil {
				return err
			}

			items := make([]models.OrderItem, 0, len(lines))
			for _, l := range lines {
				items = append(items, models.OrderItem{
					ProductID:  l.ProductID,
					Name:       l.Name,
					Image:      l.Image,
					Category:   l.Category,
					Price:      l.Price,
					OfferPrice: l.OfferPrice,
					Quantity:   l.Quantity,
				})
			}

			placed = models.Order{
				NumericOrderID: numericID,
				IdempotencyKey: req.IdempotencyKey,
				CustomerName:   req.Name,
				Address:        req.Address,
				Phone:          req.Phone,
				Email:          req.Email,
				PaymentMethod:  req.PaymentMethod,
				Items:          items,
				Total:          totals.TotalAmount,
				TotalSavings:   totals.TotalSavings,
				Status:         models.OrderStatusPending,
				CreatedAt:      time.Now(),
			}
			if err := tx.Create(&placed).Error; err != nil {
				return err
			}
			created = true
			return nil
		})
	}

	if err := backoff.Retry(submit, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		return nil, err
	}

	// Confirmed success: now, and only now, empty the cart.
	if created {
		s.Clear()
	}
	return &placed, nil
}

// nextOrderNumber advances the per-name counter inside the caller's
// transaction.
func nextOrderNumber(tx *gorm.DB) (int64, error) {
	var seq models.Sequence
	err := tx.Where("name = ?", "orders").First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = models.Sequence{Name: "orders", LastValue: orderNumberFloor + 1}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, err
		}
		return seq.LastValue, nil
	}
	if err != nil {
		return 0, err
	}

	seq.LastValue++
	if err := tx.Save(&seq).Error; err != nil {
		return 0, err
	}
	return seq.LastValue, nil
}

// PlaceOrderHandler validates the delivery form and submits the order.
// POST /orders/place
func PlaceOrderHandler(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Cart-Session")
		if key == "" {
			key = c.Query("session")
		}
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Form validation blocks the submission before any store write.
		if !phonePattern.MatchString(req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
			return
		}
		if !paymentMethods[req.PaymentMethod] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
			return
		}

		order, err := PlaceOrder(db, carts.Session(key), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("🧾 Order #%d placed (%s)", order.NumericOrderID, order.PaymentMethod)
		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, order)
	}
}
