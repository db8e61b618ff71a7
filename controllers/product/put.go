package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/controllers/upload"
	"github.com/RAJ-RHR/ecommerce/models"
)

// UpdateProduct updates an existing product. Fields absent from the form
// are left unchanged; a new image replaces the old file on disk.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		updates := make(map[string]interface{})
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if slug := c.PostForm("slug"); slug != "" {
			updates["slug"] = slug
		}
		if category := c.PostForm("category"); category != "" {
			updates["category"] = category
		}
		if description := c.PostForm("description"); description != "" {
			updates["description"] = description
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if offerPriceStr := c.PostForm("offer_price"); offerPriceStr != "" {
			offerPrice, err := strconv.ParseFloat(offerPriceStr, 64)
			if err != nil || offerPrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer_price"})
				return
			}
			updates["offer_price"] = offerPrice
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, _, err := uploadcontroller.SaveUploadedImage(c, file, uploadDir, "products", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			updates["image"] = imageURL
		}

		if len(updates) == 0 {
			c.JSON(http.StatusOK, product)
			return
		}

		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
