package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/cart"
	"github.com/RAJ-RHR/ecommerce/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Sequence{},
	))
	return db
}

func setupCheckoutRouter(t *testing.T) (*gin.Engine, *gorm.DB, *cart.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	store, err := cart.NewStore(t.TempDir())
	require.NoError(t, err)
	carts := cart.NewManager(store, cart.NewBroker())

	r := gin.New()
	r.POST("/orders/place", PlaceOrderHandler(db, carts))
	r.GET("/orders/:orderNumber", GetOrderByNumberHandler(db))
	return r, db, carts
}

func fillCart(carts *cart.Manager, key string) {
	s := carts.Session(key)
	s.Add(cart.Product{ID: "1", Name: "Ashwagandha", Price: 100, OfferPrice: 80})
	s.Add(cart.Product{ID: "1", Name: "Ashwagandha", Price: 100, OfferPrice: 80})
}

func submitCheckout(r *gin.Engine, sessionKey string, body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/orders/place", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Session", sessionKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCheckoutBody() map[string]any {
	return map[string]any{
		"name":            "Asha Rao",
		"address":         "12 MG Road, Kochi",
		"phone":           "9876543210",
		"email":           "asha@example.com",
		"payment_method":  "cod",
		"idempotency_key": uuid.NewString(),
	}
}

func TestCheckoutRejectsInvalidPhoneBeforeAnyWrite(t *testing.T) {
	r, db, carts := setupCheckoutRouter(t)
	fillCart(carts, "sess")

	body := validCheckoutBody()
	body["phone"] = "12345"
	w := submitCheckout(r, "sess", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count, "rejected submission must not touch the store")
	assert.Equal(t, 2, carts.Session("sess").Totals().TotalQuantity, "cart stays intact")
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	r, db, carts := setupCheckoutRouter(t)
	fillCart(carts, "sess")

	body := validCheckoutBody()
	body["payment_method"] = "bitcoin"
	w := submitCheckout(r, "sess", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r, _, _ := setupCheckoutRouter(t)

	w := submitCheckout(r, "empty-sess", validCheckoutBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutCreatesPendingOrderAndClearsCart(t *testing.T) {
	r, db, carts := setupCheckoutRouter(t)
	fillCart(carts, "sess")

	w := submitCheckout(r, "sess", validCheckoutBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, int64(1001), order.NumericOrderID)
	assert.Equal(t, 160.0, order.Total)
	assert.Equal(t, 40.0, order.TotalSavings)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Cleared only after the confirmed write.
	assert.Empty(t, carts.Session("sess").Lines())

	// Thank-you page lookup by public numeric id.
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", order.NumericOrderID), nil)
	lookup := httptest.NewRecorder()
	r.ServeHTTP(lookup, req)
	assert.Equal(t, http.StatusOK, lookup.Code)
}

func TestCheckoutRetrySameIdempotencyKeyReturnsSameOrder(t *testing.T) {
	r, db, carts := setupCheckoutRouter(t)
	fillCart(carts, "sess")

	body := validCheckoutBody()
	first := submitCheckout(r, "sess", body)
	require.Equal(t, http.StatusCreated, first.Code)

	// Double click: the cart is empty now, but the same key must return
	// the order already created instead of failing or duplicating.
	second := submitCheckout(r, "sess", body)
	require.Equal(t, http.StatusCreated, second.Code)

	var firstOrder, secondOrder models.Order
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstOrder))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondOrder))
	assert.Equal(t, firstOrder.NumericOrderID, secondOrder.NumericOrderID)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "a retried submission must not create a second order")
}

func TestOrderNumbersAreSequential(t *testing.T) {
	r, _, carts := setupCheckoutRouter(t)

	fillCart(carts, "a")
	wa := submitCheckout(r, "a", validCheckoutBody())
	require.Equal(t, http.StatusCreated, wa.Code)

	fillCart(carts, "b")
	wb := submitCheckout(r, "b", validCheckoutBody())
	require.Equal(t, http.StatusCreated, wb.Code)

	var a, b models.Order
	require.NoError(t, json.Unmarshal(wa.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(wb.Body.Bytes(), &b))
	assert.Equal(t, a.NumericOrderID+1, b.NumericOrderID)
}

func TestUpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Order{
		NumericOrderID: 1001, IdempotencyKey: uuid.NewString(),
		CustomerName: "A", Address: "B", Phone: "9876543210",
		Status: models.OrderStatusPending,
	}).Error)

	r := gin.New()
	r.PUT("/orders/:orderID/status", UpdateOrderStatusHandler(db))

	payload, _ := json.Marshal(gin.H{"status": "shipped"})
	req := httptest.NewRequest(http.MethodPut, "/orders/1/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}
