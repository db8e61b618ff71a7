package productcontroller

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/controllers/upload"
	"github.com/RAJ-RHR/ecommerce/models"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CreateProduct creates a new product from a multipart form with an image
// upload.
// POST /admin/products
func CreateProduct(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		offerPriceStr := c.PostForm("offer_price")
		if name == "" || priceStr == "" || offerPriceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and offer_price are required"})
			return
		}

		// Optional fields
		category := c.PostForm("category")
		description := c.PostForm("description")
		slug := c.PostForm("slug")
		if slug == "" {
			slug = Slugify(name)
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		offerPrice, err := strconv.ParseFloat(offerPriceStr, 64)
		if err != nil || offerPrice < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer_price"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, _, err := uploadcontroller.SaveUploadedImage(c, file, uploadDir, "products", publicBaseURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		newProduct := models.Product{
			Name:        name,
			Slug:        slug,
			Category:    category,
			Description: description,
			Price:       price,
			OfferPrice:  offerPrice,
			Image:       imageURL,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
