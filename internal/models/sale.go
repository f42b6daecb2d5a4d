// internal/models/sale.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable ledger entry. Product fields and amounts are copied at
// sale time so later catalogue edits never rewrite history.
type Sale struct {
	ID             int             `json:"id"`
	CustomerName   string          `json:"customer_name"`
	CustomerType   CustomerType    `json:"customer_type"`
	ProductID      int             `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Brand          string          `json:"brand"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DiscountRate   decimal.Decimal `json:"discount_rate"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	Date           time.Time       `json:"date"`
}

// NewSale snapshots product and prices the sale for the given tier.
func NewSale(id int, customerName string, customerType CustomerType, product Product, quantity int, at time.Time) Sale {
	rate := customerType.DiscountRate()
	gross := product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	discount := gross.Mul(rate)

	return Sale{
		ID:             id,
		CustomerName:   customerName,
		CustomerType:   customerType,
		ProductID:      product.ID,
		ProductName:    product.Name,
		Brand:          product.Brand,
		Quantity:       quantity,
		UnitPrice:      product.UnitPrice,
		DiscountRate:   rate,
		GrossAmount:    gross,
		DiscountAmount: discount,
		NetAmount:      gross.Sub(discount),
		Date:           at,
	}
}
