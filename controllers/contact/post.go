package contactcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/models"
)

type contactInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// SubmitContact stores one contact form message, sent as JSON or as a
// urlencoded form. Fields are trimmed before the required check and stored
// trimmed.
func SubmitContact(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input contactInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}

		contact := models.Contact{
			Name:    strings.TrimSpace(input.Name),
			Email:   strings.TrimSpace(input.Email),
			Message: strings.TrimSpace(input.Message),
		}
		if contact.Name == "" || contact.Email == "" || contact.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}

		if err := db.WithContext(c.Request.Context()).Create(&contact).Error; err != nil {
			log.Error("Failed to save contact message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact message"})
			return
		}

		log.Info("Contact message received", zap.Uint("id", contact.ID))
		c.JSON(http.StatusCreated, gin.H{"message": "Thank you! Your message has been received."})
	}
}
