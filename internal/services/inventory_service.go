// internal/services/inventory_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/models"
	"github.com/javajoker/inventory-sales/internal/utils"
)

type InventoryService struct {
	store *database.Store
}

type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,notblank"`
	Brand          string          `json:"brand" validate:"required,notblank"`
	Category       string          `json:"category" validate:"required,notblank"`
	UnitPrice      decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Stock          int             `json:"stock" validate:"min=0,max=1000000000"`
	WarrantyMonths int             `json:"warranty_months" validate:"min=0,max=1000000000"`
}

// UpdateResult is the outcome of a partial update: the product as stored
// afterwards plus every field that was skipped.
type UpdateResult struct {
	Product  models.Product `json:"product"`
	Rejected []FieldError   `json:"rejected,omitempty"`
}

func NewInventoryService(store *database.Store) *InventoryService {
	return &InventoryService{store: store}
}

func (s *InventoryService) NextProductID() int {
	var id int
	s.store.View(func(tx *database.ReadTx) {
		id = tx.NextProductID()
	})
	return id
}

// FindByID reports false when no product has the id.
func (s *InventoryService) FindByID(id int) (models.Product, bool) {
	var product models.Product
	var found bool
	s.store.View(func(tx *database.ReadTx) {
		product, found = tx.FindProduct(id)
	})
	return product, found
}

// List returns the inventory in insertion order.
func (s *InventoryService) List() []models.Product {
	var products []models.Product
	s.store.View(func(tx *database.ReadTx) {
		products = tx.Products()
	})
	return products
}

func (s *InventoryService) Add(req *CreateProductRequest) (models.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Brand = strings.TrimSpace(req.Brand)
	req.Category = strings.TrimSpace(req.Category)

	if err := utils.ValidateStruct(req); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var product models.Product
	err := s.store.WithTransaction(func(tx *database.Tx) error {
		product = models.Product{
			ID:             tx.NextProductID(),
			Name:           req.Name,
			Brand:          req.Brand,
			Category:       req.Category,
			UnitPrice:      req.UnitPrice,
			Stock:          req.Stock,
			WarrantyMonths: req.WarrantyMonths,
		}
		tx.InsertProduct(product)
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
		"stock":      product.Stock,
	}).Info("Product added")

	return product, nil
}

// Update applies the fields present in update. Invalid fields are skipped
// and reported while the valid ones are still applied.
func (s *InventoryService) Update(id int, update models.ProductUpdate) (UpdateResult, error) {
	var result UpdateResult

	err := s.store.WithTransaction(func(tx *database.Tx) error {
		if tx.ProductCount() == 0 {
			return ErrEmptyInventory
		}

		product, ok := tx.FindProduct(id)
		if !ok {
			return ErrProductNotFound
		}

		reject := func(field, reason string) {
			result.Rejected = append(result.Rejected, FieldError{Field: field, Reason: reason})
		}
		setText := func(field string, value *string, target *string) {
			if value == nil {
				return
			}
			if v := strings.TrimSpace(*value); v != "" {
				*target = v
			} else {
				reject(field, ReasonBlank)
			}
		}
		setCount := func(field string, value *int, target *int) {
			if value == nil {
				return
			}
			if *value < 0 {
				reject(field, ReasonNegative)
				return
			}
			if *value > models.MaxQuantity {
				reject(field, ReasonTooLarge)
				return
			}
			*target = *value
		}

		setText("name", update.Name, &product.Name)
		setText("brand", update.Brand, &product.Brand)
		setText("category", update.Category, &product.Category)

		if update.UnitPrice != nil {
			if update.UnitPrice.IsNegative() {
				reject("unit_price", ReasonNegative)
			} else {
				product.UnitPrice = *update.UnitPrice
			}
		}

		setCount("stock", update.Stock, &product.Stock)
		setCount("warranty_months", update.WarrantyMonths, &product.WarrantyMonths)

		tx.SaveProduct(product)
		result.Product = product
		return nil
	})
	if err != nil {
		return UpdateResult{}, err
	}

	entry := logrus.WithField("product_id", id)
	for _, rejected := range result.Rejected {
		entry.WithField("field", rejected.Field).Warnf("Update field rejected: %s", rejected.Reason)
	}
	entry.Info("Product updated")

	return result, nil
}

// Delete removes the product unconditionally. Sales that reference it keep
// their snapshot.
func (s *InventoryService) Delete(id int) (models.Product, error) {
	var removed models.Product

	err := s.store.WithTransaction(func(tx *database.Tx) error {
		if tx.ProductCount() == 0 {
			return ErrEmptyInventory
		}

		product, ok := tx.DeleteProduct(id)
		if !ok {
			return ErrProductNotFound
		}
		removed = product
		return nil
	})
	if err != nil {
		return models.Product{}, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": removed.ID,
		"name":       removed.Name,
	}).Info("Product deleted")

	return removed, nil
}
