// internal/database/tx.go
package database

import (
	"slices"

	"github.com/javajoker/inventory-sales/internal/models"
)

// ReadTx exposes read-only access to the store. Returned values are copies.
type ReadTx struct {
	store *Store
}

// Tx adds mutations to ReadTx. Only WithTransaction hands one out.
type Tx struct {
	ReadTx
}

func (tx *ReadTx) Products() []models.Product {
	return slices.Clone(tx.store.products)
}

func (tx *ReadTx) ProductCount() int {
	return len(tx.store.products)
}

func (tx *ReadTx) FindProduct(id int) (models.Product, bool) {
	if i := tx.indexOf(id); i >= 0 {
		return tx.store.products[i], true
	}
	return models.Product{}, false
}

// NextProductID is one past the highest id held, or 1 for an empty inventory.
func (tx *ReadTx) NextProductID() int {
	maxID := 0
	for _, p := range tx.store.products {
		maxID = max(maxID, p.ID)
	}
	return maxID + 1
}

func (tx *ReadTx) Sales() []models.Sale {
	return slices.Clone(tx.store.sales)
}

func (tx *ReadTx) SaleCount() int {
	return len(tx.store.sales)
}

// NextSaleID follows the same max+1 scheme as products, scoped to the ledger.
func (tx *ReadTx) NextSaleID() int {
	maxID := 0
	for _, s := range tx.store.sales {
		maxID = max(maxID, s.ID)
	}
	return maxID + 1
}

func (tx *ReadTx) indexOf(id int) int {
	return slices.IndexFunc(tx.store.products, func(p models.Product) bool {
		return p.ID == id
	})
}

func (tx *Tx) InsertProduct(p models.Product) {
	tx.store.products = append(tx.store.products, p)
}

// SaveProduct replaces the stored product with the same id.
func (tx *Tx) SaveProduct(p models.Product) bool {
	i := tx.indexOf(p.ID)
	if i < 0 {
		return false
	}
	tx.store.products[i] = p
	return true
}

func (tx *Tx) DeleteProduct(id int) (models.Product, bool) {
	i := tx.indexOf(id)
	if i < 0 {
		return models.Product{}, false
	}
	removed := tx.store.products[i]
	tx.store.products = slices.Delete(tx.store.products, i, i+1)
	return removed, true
}

func (tx *Tx) AppendSale(sale models.Sale) {
	tx.store.sales = append(tx.store.sales, sale)
}
