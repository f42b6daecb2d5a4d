// internal/handlers/sale.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/inventory-sales/internal/i18n"
	"github.com/javajoker/inventory-sales/internal/services"
	"github.com/javajoker/inventory-sales/internal/utils"
)

type SaleHandler struct {
	salesService *services.SalesService
}

func NewSaleHandler(salesService *services.SalesService) *SaleHandler {
	return &SaleHandler{
		salesService: salesService,
	}
}

// POST /sales
func (h *SaleHandler) RegisterSale(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	sale, err := h.salesService.RegisterSale(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySaleRegistered),
		"sale":    sale,
	})
}

// GET /sales
func (h *SaleHandler) GetSales(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	sales := h.salesService.History()
	page := utils.Paginate(sales, params)

	result := utils.CreatePaginationResult(page, int64(len(sales)), params)
	utils.PaginatedResponse(c, result)
}
