// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/i18n"
	"github.com/javajoker/inventory-sales/internal/services"
	"github.com/javajoker/inventory-sales/internal/utils"
)

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var stockErr *services.StockError
	switch {
	case errors.As(err, &stockErr):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeySaleInsufficientStock, stockErr.Available, stockErr.Requested), stockErr)
	case errors.Is(err, services.ErrNoStock):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeySaleNoStock), nil)
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, services.ErrEmptyInventory):
		utils.EmptyResponse(c, i18n.KeyInventoryEmpty)
	case errors.Is(err, services.ErrNoSales):
		utils.EmptyResponse(c, i18n.KeySalesEmpty)
	case errors.Is(err, services.ErrInvalidInput):
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}
