package contactControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAJ-RHR/ecommerce/models"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact stores a contact-form message.
// POST /contact
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		contact := models.Contact{
			Name:      input.Name,
			Email:     input.Email,
			Message:   input.Message,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Message received"})
	}
}

// GetAllContacts lists contact messages, newest first.
// GET /admin/contacts
func GetAllContacts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var contacts []models.Contact
		if err := db.Order("created_at DESC").Find(&contacts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		c.JSON(http.StatusOK, contacts)
	}
}

// DeleteContact removes a contact message.
// DELETE /admin/contacts/:id
func DeleteContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Contact{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
	}
}
