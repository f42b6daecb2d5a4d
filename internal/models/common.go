// internal/models/common.go
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DateLayout is how sale timestamps are rendered to the shells.
const DateLayout = "2006-01-02 15:04:05"

// CustomerType is the customer tier a sale is billed under. Only the three
// declared values exist; the zero value is CustomerRegular.
type CustomerType uint8

const (
	CustomerRegular CustomerType = iota
	CustomerVIP
	CustomerWholesale
)

// Discount table
var discountRates = [...]decimal.Decimal{
	CustomerRegular:   decimal.Zero,
	CustomerVIP:       decimal.RequireFromString("0.10"),
	CustomerWholesale: decimal.RequireFromString("0.15"),
}

var customerTypeNames = [...]string{
	CustomerRegular:   "regular",
	CustomerVIP:       "vip",
	CustomerWholesale: "wholesale",
}

// CustomerTypes lists the tiers in menu order.
func CustomerTypes() []CustomerType {
	return []CustomerType{CustomerRegular, CustomerVIP, CustomerWholesale}
}

// DiscountRate returns the fixed fraction taken off the gross amount.
func (t CustomerType) DiscountRate() decimal.Decimal {
	return discountRates[t]
}

func (t CustomerType) String() string {
	return customerTypeNames[t]
}

func (t CustomerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *CustomerType) UnmarshalText(text []byte) error {
	parsed, err := ParseCustomerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseCustomerType maps a tier name to its CustomerType. Shells call it at
// the boundary so the core never sees an unknown tier.
func ParseCustomerType(s string) (CustomerType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range customerTypeNames {
		if n == name {
			return CustomerType(i), nil
		}
	}
	return CustomerRegular, fmt.Errorf("unknown customer type %q", s)
}
