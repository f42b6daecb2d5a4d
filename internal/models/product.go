// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// MaxQuantity caps stock and warranty counts so running totals stay within int.
const MaxQuantity = 1_000_000_000

type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Stock          int             `json:"stock"`
	WarrantyMonths int             `json:"warranty_months"`
	TotalSold      int             `json:"total_sold"`
}

// ProductUpdate is a partial update. Nil fields keep their current value.
type ProductUpdate struct {
	Name           *string          `json:"name,omitempty"`
	Brand          *string          `json:"brand,omitempty"`
	Category       *string          `json:"category,omitempty"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty"`
	Stock          *int             `json:"stock,omitempty"`
	WarrantyMonths *int             `json:"warranty_months,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Brand == nil && u.Category == nil &&
		u.UnitPrice == nil && u.Stock == nil && u.WarrantyMonths == nil
}

// DefaultInventory is the catalogue the tracker starts with when no seed
// file is configured.
func DefaultInventory() []Product {
	return []Product{
		{ID: 1, Name: "Smartphone X100", Brand: "TechWave", Category: "Smartphone", UnitPrice: decimal.NewFromInt(350), Stock: 20, WarrantyMonths: 12},
		{ID: 2, Name: "Laptop Pro 15", Brand: "ByteBook", Category: "Laptop", UnitPrice: decimal.NewFromInt(950), Stock: 10, WarrantyMonths: 24},
		{ID: 3, Name: "Wireless Headphones", Brand: "SoundMax", Category: "Audio", UnitPrice: decimal.NewFromInt(80), Stock: 30, WarrantyMonths: 6},
		{ID: 4, Name: "4K Smart TV 55\"", Brand: "VisionPlus", Category: "TV", UnitPrice: decimal.NewFromInt(650), Stock: 8, WarrantyMonths: 18},
		{ID: 5, Name: "Bluetooth Speaker", Brand: "SoundMax", Category: "Audio", UnitPrice: decimal.NewFromInt(45), Stock: 25, WarrantyMonths: 6},
	}
}
