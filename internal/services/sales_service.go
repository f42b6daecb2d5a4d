// internal/services/sales_service.go
package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/models"
	"github.com/javajoker/inventory-sales/internal/utils"
)

type SalesService struct {
	store *database.Store
	now   func() time.Time
}

type RegisterSaleRequest struct {
	CustomerName string              `json:"customer_name" validate:"required,notblank"`
	CustomerType models.CustomerType `json:"customer_type"`
	ProductID    int                 `json:"product_id" validate:"min=1"`
	Quantity     int                 `json:"quantity" validate:"min=1"`
}

func NewSalesService(store *database.Store) *SalesService {
	return &SalesService{
		store: store,
		now:   time.Now,
	}
}

// RegisterSale validates stock, prices the sale, takes the quantity out of
// stock and appends the sale to the ledger. Nothing changes unless every
// check passes.
func (s *SalesService) RegisterSale(req *RegisterSaleRequest) (models.Sale, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)

	if err := utils.ValidateStruct(req); err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var sale models.Sale
	err := s.store.WithTransaction(func(tx *database.Tx) error {
		if tx.ProductCount() == 0 {
			return ErrEmptyInventory
		}

		product, ok := tx.FindProduct(req.ProductID)
		if !ok {
			return ErrProductNotFound
		}

		if product.Stock <= 0 {
			return ErrNoStock
		}

		if req.Quantity > product.Stock {
			return &StockError{Available: product.Stock, Requested: req.Quantity}
		}
		if product.TotalSold > math.MaxInt-req.Quantity {
			return fmt.Errorf("%w: total sold for product %d would overflow", ErrInvalidInput, product.ID)
		}

		sale = models.NewSale(tx.NextSaleID(), req.CustomerName, req.CustomerType, product, req.Quantity, s.now())

		product.Stock -= req.Quantity
		product.TotalSold += req.Quantity
		tx.SaveProduct(product)
		tx.AppendSale(sale)

		return nil
	})
	if err != nil {
		return models.Sale{}, err
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":       sale.ID,
		"product_id":    sale.ProductID,
		"quantity":      sale.Quantity,
		"customer_type": sale.CustomerType.String(),
		"net_amount":    sale.NetAmount.StringFixed(2),
	}).Info("Sale registered")

	return sale, nil
}

// History returns the ledger in the order sales were registered.
func (s *SalesService) History() []models.Sale {
	var sales []models.Sale
	s.store.View(func(tx *database.ReadTx) {
		sales = tx.Sales()
	})
	return sales
}
