// internal/services/report_service.go
package services

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/models"
)

// TopSellerLimit is how many products the top sellers report shows.
const TopSellerLimit = 3

type BrandSales struct {
	Brand         string          `json:"brand"`
	TotalQuantity int             `json:"total_quantity"`
	TotalNet      decimal.Decimal `json:"total_net"`
}

type IncomeReport struct {
	SaleCount      int             `json:"sale_count"`
	GrossIncome    decimal.Decimal `json:"gross_income"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	NetIncome      decimal.Decimal `json:"net_income"`
}

type ProductPerformance struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Stock     int     `json:"stock"`
	Sold      int     `json:"sold"`
	Turnover  float64 `json:"turnover"`
}

// ReportService computes read-only reports over a consistent snapshot of
// the store.
type ReportService struct {
	store *database.Store
}

func NewReportService(store *database.Store) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) TopSellers(limit int) ([]models.Product, error) {
	var products []models.Product
	s.store.View(func(tx *database.ReadTx) {
		products = tx.Products()
	})
	if len(products) == 0 {
		return nil, ErrEmptyInventory
	}
	return TopSellers(products, limit), nil
}

func (s *ReportService) SalesByBrand() ([]BrandSales, error) {
	var sales []models.Sale
	s.store.View(func(tx *database.ReadTx) {
		sales = tx.Sales()
	})
	if len(sales) == 0 {
		return nil, ErrNoSales
	}
	return SalesByBrand(sales), nil
}

func (s *ReportService) Income() (IncomeReport, error) {
	var sales []models.Sale
	s.store.View(func(tx *database.ReadTx) {
		sales = tx.Sales()
	})
	if len(sales) == 0 {
		return IncomeReport{}, ErrNoSales
	}
	return Income(sales), nil
}

func (s *ReportService) InventoryPerformance() ([]ProductPerformance, error) {
	var products []models.Product
	s.store.View(func(tx *database.ReadTx) {
		products = tx.Products()
	})
	if len(products) == 0 {
		return nil, ErrEmptyInventory
	}
	return InventoryPerformance(products), nil
}

// TopSellers returns up to limit products with TotalSold > 0, best first.
// Ties keep inventory order.
func TopSellers(products []models.Product, limit int) []models.Product {
	sold := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.TotalSold > 0 {
			sold = append(sold, p)
		}
	}

	slices.SortStableFunc(sold, func(a, b models.Product) int {
		return cmp.Compare(b.TotalSold, a.TotalSold)
	})

	if limit >= 0 && len(sold) > limit {
		sold = sold[:limit]
	}
	return sold
}

// SalesByBrand groups the ledger by the brand recorded on each sale, in the
// order each brand first appears.
func SalesByBrand(sales []models.Sale) []BrandSales {
	var totals []BrandSales
	index := make(map[string]int)

	for _, sale := range sales {
		i, ok := index[sale.Brand]
		if !ok {
			i = len(totals)
			index[sale.Brand] = i
			totals = append(totals, BrandSales{Brand: sale.Brand, TotalNet: decimal.Zero})
		}
		totals[i].TotalQuantity += sale.Quantity
		totals[i].TotalNet = totals[i].TotalNet.Add(sale.NetAmount)
	}
	return totals
}

func Income(sales []models.Sale) IncomeReport {
	report := IncomeReport{
		SaleCount:      len(sales),
		GrossIncome:    decimal.Zero,
		TotalDiscounts: decimal.Zero,
		NetIncome:      decimal.Zero,
	}
	for _, sale := range sales {
		report.GrossIncome = report.GrossIncome.Add(sale.GrossAmount)
		report.TotalDiscounts = report.TotalDiscounts.Add(sale.DiscountAmount)
		report.NetIncome = report.NetIncome.Add(sale.NetAmount)
	}
	return report
}

// InventoryPerformance reports sold/(sold+stock) per product, 0 when the
// product never held any units.
func InventoryPerformance(products []models.Product) []ProductPerformance {
	rows := make([]ProductPerformance, 0, len(products))
	for _, p := range products {
		row := ProductPerformance{
			ProductID: p.ID,
			Name:      p.Name,
			Brand:     p.Brand,
			Stock:     p.Stock,
			Sold:      p.TotalSold,
		}
		if total := float64(p.TotalSold) + float64(p.Stock); total > 0 {
			row.Turnover = float64(p.TotalSold) / total
		}
		rows = append(rows, row)
	}
	return rows
}
