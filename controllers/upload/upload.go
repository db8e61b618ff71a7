package uploadcontroller

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/models"
)

var fileNameCleaner = regexp.MustCompile(`[^\w\d\-_\.]`)

// SaveUploadedImage writes an uploaded file under uploadDir/subdir with a
// sanitized timestamped name and returns its stable public URL. Shared by
// the image endpoint and the product/blog/category forms so upload logic
// lives in one place.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, uploadDir, subdir, publicBaseURL string) (fileURL, fileName string, err error) {
	cleanName := fileNameCleaner.ReplaceAllString(file.Filename, "_")
	fileName = fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName)

	saveDir := filepath.Join(uploadDir, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	savePath := filepath.Join(saveDir, fileName)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	fileURL = fmt.Sprintf("%s/uploads/%s/%s", publicBaseURL, subdir, fileName)
	return fileURL, filepath.Join(subdir, fileName), nil
}

// HandleImageUpload accepts a file upload and returns its public URL.
// POST /admin/images
func HandleImageUpload(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		fileURL, fileName, err := SaveUploadedImage(c, file, uploadDir, "images", publicBaseURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		img, err := models.SaveImage(db, fileName, fileURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record image"})
			return
		}

		log.Printf("Image uploaded: %s -> %s", file.Filename, fileURL)

		c.JSON(http.StatusOK, gin.H{
			"file_url": img.FileURL,
			"message":  "File uploaded successfully",
		})
	}
}

// ListImages returns all uploaded images, newest first.
// GET /admin/images
func ListImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := models.GetAllImages(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}
