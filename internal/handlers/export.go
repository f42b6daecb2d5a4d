// internal/handlers/export.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/csvstore"
	"github.com/javajoker/inventory-sales/internal/i18n"
	"github.com/javajoker/inventory-sales/internal/services"
	"github.com/javajoker/inventory-sales/internal/utils"
)

type ExportHandler struct {
	inventoryService *services.InventoryService
	salesService     *services.SalesService
}

func NewExportHandler(inventoryService *services.InventoryService, salesService *services.SalesService) *ExportHandler {
	return &ExportHandler{
		inventoryService: inventoryService,
		salesService:     salesService,
	}
}

// GET /export/products.csv
func (h *ExportHandler) ExportProducts(c *gin.Context) {
	products := h.inventoryService.List()
	if len(products) == 0 {
		utils.EmptyResponse(c, i18n.KeyInventoryNone)
		return
	}

	writeCSV(c, "products.csv")
	if err := csvstore.WriteProducts(c.Writer, products); err != nil {
		logrus.WithError(err).Error("Failed to export products")
	}
}

// GET /export/sales.csv
func (h *ExportHandler) ExportSales(c *gin.Context) {
	sales := h.salesService.History()
	if len(sales) == 0 {
		utils.EmptyResponse(c, i18n.KeySalesEmpty)
		return
	}

	writeCSV(c, "sales.csv")
	if err := csvstore.WriteSales(c.Writer, sales); err != nil {
		logrus.WithError(err).Error("Failed to export sales")
	}
}

func writeCSV(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)
}
