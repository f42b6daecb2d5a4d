// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/inventory-sales/internal/config"
	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/handlers"
	"github.com/javajoker/inventory-sales/internal/middleware"
	"github.com/javajoker/inventory-sales/internal/services"
)

const Version = "1.0.0"

// Initialize wires services and handlers over store. The returned limiter
// must be run by the caller so idle clients get evicted.
func Initialize(store *database.Store, cfg *config.Config) (*gin.Engine, *middleware.RateLimiter) {
	// Initialize services
	inventoryService := services.NewInventoryService(store)
	salesService := services.NewSalesService(store)
	reportService := services.NewReportService(store)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(inventoryService)
	saleHandler := handlers.NewSaleHandler(salesService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(inventoryService, salesService)

	limiter := middleware.NewRateLimiterFromConfig(cfg.RateLimit)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(limiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("", saleHandler.GetSales)
			sales.POST("", saleHandler.RegisterSale)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/top-sellers", reportHandler.GetTopSellers)
			reports.GET("/sales-by-brand", reportHandler.GetSalesByBrand)
			reports.GET("/income", reportHandler.GetIncome)
			reports.GET("/inventory-performance", reportHandler.GetInventoryPerformance)
		}

		export := v1.Group("/export")
		{
			export.GET("/products.csv", exportHandler.ExportProducts)
			export.GET("/sales.csv", exportHandler.ExportSales)
		}
	}

	return r, limiter
}
