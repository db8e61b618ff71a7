package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/controllers/upload"
	"github.com/RAJ-RHR/ecommerce/models"
)

// DeleteProduct removes a product and its reviews. The image file removal
// is best effort and never blocks the delete.
// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if rel, ok := strings.CutPrefix(product.Image, publicBaseURL+"/uploads/"); ok {
			uploadcontroller.RemoveFile(uploadDir, rel)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
