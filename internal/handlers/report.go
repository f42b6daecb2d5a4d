// internal/handlers/report.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/inventory-sales/internal/i18n"
	"github.com/javajoker/inventory-sales/internal/services"
	"github.com/javajoker/inventory-sales/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GET /reports/top-sellers
func (h *ReportHandler) GetTopSellers(c *gin.Context) {
	products, err := h.reportService.TopSellers(services.TopSellerLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(products) == 0 {
		lang := utils.GetLangFromContext(c)
		utils.SuccessResponseWithMeta(c, products, gin.H{
			"message": i18n.T(lang, i18n.KeyReportNothingSold),
		})
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /reports/sales-by-brand
func (h *ReportHandler) GetSalesByBrand(c *gin.Context) {
	brands, err := h.reportService.SalesByBrand()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, brands)
}

// GET /reports/income
func (h *ReportHandler) GetIncome(c *gin.Context) {
	income, err := h.reportService.Income()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, income)
}

// GET /reports/inventory-performance
func (h *ReportHandler) GetInventoryPerformance(c *gin.Context) {
	rows, err := h.reportService.InventoryPerformance()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, rows)
}
