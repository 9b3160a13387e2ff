package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	contactcontroller "github.com/Deepika-251004/shampoo-website/controllers/contact"
	healthcontroller "github.com/Deepika-251004/shampoo-website/controllers/health"
	productcontroller "github.com/Deepika-251004/shampoo-website/controllers/product"
)

// SetupRoutes wires the catalog API, the health probe and, when staticDir
// is set, the storefront's static files for every other GET.
func SetupRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger, staticDir string) {
	log = log.Named("api")

	api := r.Group("/api")
	{
		api.GET("/products", productcontroller.GetProducts(db, log))
		api.POST("/contact", contactcontroller.SubmitContact(db, log))
	}

	r.GET("/healthz", healthcontroller.Healthz(db, log))

	r.NoRoute(staticFallback(staticDir))
}

// staticFallback serves files from dir. API paths and non-GET requests get
// a JSON 404 instead.
func staticFallback(dir string) gin.HandlerFunc {
	var files http.Handler
	if dir != "" {
		files = http.FileServer(gin.Dir(dir, false))
	}
	return func(c *gin.Context) {
		method := c.Request.Method
		if files == nil || strings.HasPrefix(c.Request.URL.Path, "/api/") ||
			(method != http.MethodGet && method != http.MethodHead) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
