package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/controllers/upload"
	"github.com/RAJ-RHR/ecommerce/models"
)

// CreateCategory creates a category, optionally with an image.
// POST /admin/categories
func CreateCategory(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, _, err = uploadcontroller.SaveUploadedImage(c, file, uploadDir, "categories", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		category := models.Category{
			Name:  name,
			Slug:  Slugify(name),
			Image: imageURL,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories.
// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetProductsByCategory returns the products filed under a category slug.
// GET /categories/:slug/products
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var category models.Category
		if err := db.Where("slug = ?", slug).First(&category).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var products []models.Product
		if err := db.Where("category = ?", category.Name).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": products,
		})
	}
}

// UpdateCategory renames a category or swaps its image.
// PUT /admin/categories/:id
func UpdateCategory(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			category.Name = name
			category.Slug = Slugify(name)
		}
		if file, err := c.FormFile("image"); err == nil {
			imageURL, _, err := uploadcontroller.SaveUploadedImage(c, file, uploadDir, "categories", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			category.Image = imageURL
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category. Products keep their category string.
// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.Category{}, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
