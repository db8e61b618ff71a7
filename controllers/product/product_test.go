package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/models"
)

func setupProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Review{}))

	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.GET("/products/slug/:slug", GetProductBySlug(db))
	return r, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{Name: "Ashwagandha Capsules", Slug: "ashwagandha-capsules", Category: "Wellness", Price: 100, OfferPrice: 80},
		{Name: "Triphala Churna", Slug: "triphala-churna", Category: "Digestion", Price: 150, OfferPrice: 120},
		{Name: "Brahmi Tablets", Slug: "brahmi-tablets", Category: "Wellness", Price: 200, OfferPrice: 180},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func listProducts(t *testing.T, r *gin.Engine, path string) []models.Product {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestGetProductsFilters(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	assert.Len(t, listProducts(t, r, "/products"), 3)
	assert.Len(t, listProducts(t, r, "/products?category=Wellness"), 2)
	assert.Len(t, listProducts(t, r, "/products?search=churna"), 1)
	assert.Len(t, listProducts(t, r, "/products?min_price=100&max_price=150"), 1)
}

func TestGetProductsSortWhitelist(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	byPrice := listProducts(t, r, "/products?sort_by=offer_price&order=asc")
	require.Len(t, byPrice, 3)
	assert.Equal(t, 80.0, byPrice[0].OfferPrice)
	assert.Equal(t, 180.0, byPrice[2].OfferPrice)

	// An unknown column must not reach the ORDER BY clause.
	req := httptest.NewRequest(http.MethodGet, "/products?sort_by=;drop+table", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProductBySlugIncludesApprovedReviewsAndRelated(t *testing.T) {
	r, db := setupProductRouter(t)
	seedCatalog(t, db)

	require.NoError(t, db.Create(&models.Review{
		ProductID: 1, Name: "Asha", Rating: 5, Comment: "Works well", Approved: true,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		ProductID: 1, Name: "Troll", Rating: 1, Comment: "spam", Approved: false,
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/products/slug/ashwagandha-capsules", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Product models.Product   `json:"product"`
		Reviews []models.Review  `json:"reviews"`
		Related []models.Product `json:"related"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ashwagandha Capsules", resp.Product.Name)
	require.Len(t, resp.Reviews, 1, "unapproved reviews stay hidden")
	assert.Equal(t, "Asha", resp.Reviews[0].Name)
	require.Len(t, resp.Related, 1)
	assert.Equal(t, "Brahmi Tablets", resp.Related[0].Name)
}

func TestGetProductByIDNotFound(t *testing.T) {
	r, _ := setupProductRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ashwagandha-capsules", Slugify("Ashwagandha Capsules"))
	assert.Equal(t, "neem-tulsi-face-wash", Slugify("  Neem & Tulsi Face Wash! "))
	assert.Equal(t, "100-pure-honey", Slugify("100% Pure Honey"))
}
