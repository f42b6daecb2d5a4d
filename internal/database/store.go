// internal/database/store.go
package database

import (
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/config"
	"github.com/javajoker/inventory-sales/internal/csvstore"
	"github.com/javajoker/inventory-sales/internal/models"
)

// Store holds the inventory and the sales ledger in memory. Every access goes
// through View or WithTransaction so concurrent shells see consistent state.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	sales    []models.Sale
}

func New() *Store {
	return &Store{}
}

// Initialize builds a store and seeds it according to cfg. A seed file takes
// precedence over the built-in catalogue.
func Initialize(cfg config.StoreConfig) (*Store, error) {
	store := New()

	var seed []models.Product
	switch {
	case cfg.SeedFile != "":
		products, err := csvstore.LoadProductsFile(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		seed = products
	case cfg.SeedInventory:
		seed = models.DefaultInventory()
	}

	if err := store.Seed(seed); err != nil {
		return nil, err
	}

	logrus.WithField("products", len(seed)).Info("Inventory store initialized")
	return store, nil
}

// Seed loads products into an empty store, keeping their ids.
func (s *Store) Seed(products []models.Product) error {
	return s.WithTransaction(func(tx *Tx) error {
		if tx.ProductCount() > 0 {
			return fmt.Errorf("store already holds %d products", tx.ProductCount())
		}

		seen := make(map[int]bool, len(products))
		for _, p := range products {
			if p.ID < 1 {
				return fmt.Errorf("seed product %q has invalid id %d", p.Name, p.ID)
			}
			if seen[p.ID] {
				return fmt.Errorf("seed product id %d is duplicated", p.ID)
			}
			if p.Stock < 0 || p.TotalSold < 0 || p.WarrantyMonths < 0 || p.UnitPrice.IsNegative() {
				return fmt.Errorf("seed product %d has negative values", p.ID)
			}
			if p.Stock > models.MaxQuantity || p.WarrantyMonths > models.MaxQuantity {
				return fmt.Errorf("seed product %d exceeds %d units", p.ID, models.MaxQuantity)
			}
			seen[p.ID] = true
			tx.InsertProduct(p)
		}
		return nil
	})
}

// View runs fn with shared read access.
func (s *Store) View(fn func(tx *ReadTx)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(&ReadTx{store: s})
}

// WithTransaction runs fn with exclusive access. If fn returns an error or
// panics, products and sales are restored to what they were before.
func (s *Store) WithTransaction(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := slices.Clone(s.products)
	sales := slices.Clone(s.sales)
	rollback := func() {
		s.products = products
		s.sales = sales
	}

	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err := fn(&Tx{ReadTx{store: s}}); err != nil {
		rollback()
		return err
	}

	return nil
}
