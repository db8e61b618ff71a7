package uploadcontroller

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/models"
)

// DeleteImageHandler removes an image record and its file. File removal is
// best effort: a missing file is fine, other disk errors are logged and
// reported without blocking the record delete.
// DELETE /admin/images/:id
func DeleteImageHandler(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		var img models.Image
		if err := db.First(&img, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query image"})
			return
		}

		RemoveFile(uploadDir, img.FileName)

		// Transient store failures get a couple of bounded retries.
		deleteRecord := func() error {
			return db.Delete(&img).Error
		}
		if err := backoff.Retry(deleteRecord, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image record"})
			return
		}

		log.Printf("🗑️ Image deleted: %s", img.FileName)
		c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
	}
}

// RemoveFile deletes a stored upload from disk. Failures are logged, never
// propagated.
func RemoveFile(uploadDir, fileName string) {
	if fileName == "" {
		return
	}
	filePath := filepath.Join(uploadDir, fileName)
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Failed to delete file %s: %v", filePath, err)
	}
}
