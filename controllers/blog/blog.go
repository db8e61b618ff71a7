package blogControllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/controllers/upload"
	"github.com/RAJ-RHR/ecommerce/models"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CreateBlog publishes a post from a multipart form with an optional
// cover image.
// POST /admin/blogs
func CreateBlog(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		content := c.PostForm("content")
		if title == "" || content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
			return
		}

		slug := c.PostForm("slug")
		if slug == "" {
			slug = slugify(title)
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, _, err = uploadcontroller.SaveUploadedImage(c, file, uploadDir, "blogs", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		blog := models.Blog{
			Title:     title,
			Slug:      slug,
			Content:   content,
			Image:     imageURL,
			Product:   c.PostForm("product"),
			CreatedAt: time.Now(),
		}
		if err := db.Create(&blog).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
			return
		}

		c.JSON(http.StatusCreated, blog)
	}
}

// GetBlogs lists posts, newest first.
// GET /blogs
func GetBlogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blogs []models.Blog
		if err := db.Order("created_at DESC").Find(&blogs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// GetBlogBySlug returns one post plus the product it promotes, if any.
// GET /blogs/:slug
func GetBlogBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blog models.Blog
		if err := db.Where("slug = ?", c.Param("slug")).First(&blog).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog"})
			return
		}

		resp := gin.H{"blog": blog}
		if blog.Product != "" {
			var product models.Product
			if err := db.Where("name = ?", blog.Product).First(&product).Error; err == nil {
				resp["product"] = product
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// UpdateBlog edits a post in place.
// PUT /admin/blogs/:id
func UpdateBlog(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var blog models.Blog
		if err := db.First(&blog, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}

		if title := c.PostForm("title"); title != "" {
			blog.Title = title
		}
		if slug := c.PostForm("slug"); slug != "" {
			blog.Slug = slug
		}
		if content := c.PostForm("content"); content != "" {
			blog.Content = content
		}
		if product := c.PostForm("product"); product != "" {
			blog.Product = product
		}
		if file, err := c.FormFile("image"); err == nil {
			imageURL, _, err := uploadcontroller.SaveUploadedImage(c, file, uploadDir, "blogs", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			blog.Image = imageURL
		}

		if err := db.Save(&blog).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// DeleteBlog removes a post.
// DELETE /admin/blogs/:id
func DeleteBlog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Blog{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
	}
}
