package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Deepika-251004/shampoo-website/models"
)

// GetProducts lists the whole catalog ordered by id. An empty catalog is
// an empty array, never null.
func GetProducts(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := []models.Product{}
		if err := db.WithContext(c.Request.Context()).Order("id asc").Find(&products).Error; err != nil {
			log.Error("Failed to fetch products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
