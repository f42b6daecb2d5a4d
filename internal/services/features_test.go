// internal/services/features_test.go
package services_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/models"
	"github.com/javajoker/inventory-sales/internal/services"
)

type trackerTestContext struct {
	inventory *services.InventoryService
	sales     *services.SalesService
	reports   *services.ReportService

	created models.Product
	updated services.UpdateResult
	lastErr error

	brands []services.BrandSales
	top    []models.Product
	income services.IncomeReport
}

func (c *trackerTestContext) reset() {
	store := database.New()
	c.inventory = services.NewInventoryService(store)
	c.sales = services.NewSalesService(store)
	c.reports = services.NewReportService(store)
	c.created = models.Product{}
	c.updated = services.UpdateResult{}
	c.lastErr = nil
	c.brands = nil
	c.top = nil
	c.income = services.IncomeReport{}
}

func (c *trackerTestContext) anEmptyInventory() error {
	if n := len(c.inventory.List()); n != 0 {
		return fmt.Errorf("expected empty inventory, found %d products", n)
	}
	return nil
}

func (c *trackerTestContext) addProduct(name, brand, category, price string, stock, warranty int) error {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.created, c.lastErr = c.inventory.Add(&services.CreateProductRequest{
		Name:           name,
		Brand:          brand,
		Category:       category,
		UnitPrice:      unitPrice,
		Stock:          stock,
		WarrantyMonths: warranty,
	})
	return c.lastErr
}

func (c *trackerTestContext) aProductPricedWithStock(name, brand, price string, stock int) error {
	return c.addProduct(name, brand, "General", price, stock, 0)
}

func (c *trackerTestContext) iAddAProduct(name, brand, category, price string, stock, warranty int) error {
	return c.addProduct(name, brand, category, price, stock, warranty)
}

func (c *trackerTestContext) theProductIsCreatedWithID(id int) error {
	if c.created.ID != id {
		return fmt.Errorf("expected id %d, got %d", id, c.created.ID)
	}
	return nil
}

func (c *trackerTestContext) productHasStockAndTotalSold(id, stock, sold int) error {
	product, ok := c.inventory.FindByID(id)
	if !ok {
		return fmt.Errorf("product %d not found", id)
	}
	if product.Stock != stock || product.TotalSold != sold {
		return fmt.Errorf("expected stock %d and total sold %d, got %d and %d", stock, sold, product.Stock, product.TotalSold)
	}
	return nil
}

func (c *trackerTestContext) productIsPriced(id int, price string) error {
	product, ok := c.inventory.FindByID(id)
	if !ok {
		return fmt.Errorf("product %d not found", id)
	}
	if !product.UnitPrice.Equal(decimal.RequireFromString(price)) {
		return fmt.Errorf("expected price %s, got %s", price, product.UnitPrice)
	}
	return nil
}

func (c *trackerTestContext) iDeleteProduct(id int) error {
	_, err := c.inventory.Delete(id)
	return err
}

func (c *trackerTestContext) iUpdateProductSettingStockAndPrice(id, stock int, price string) error {
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.updated, err = c.inventory.Update(id, models.ProductUpdate{
		Stock:     &stock,
		UnitPrice: &unitPrice,
	})
	return err
}

func (c *trackerTestContext) theUpdateRejectedField(field string) error {
	for _, rejected := range c.updated.Rejected {
		if rejected.Field == field {
			return nil
		}
	}
	return fmt.Errorf("expected %q to be rejected, got %v", field, c.updated.Rejected)
}

func (c *trackerTestContext) sell(tier string, quantity, productID int) error {
	customerType, err := models.ParseCustomerType(tier)
	if err != nil {
		return err
	}
	_, c.lastErr = c.sales.RegisterSale(&services.RegisterSaleRequest{
		CustomerName: "Test Customer",
		CustomerType: customerType,
		ProductID:    productID,
		Quantity:     quantity,
	})
	return nil
}

func (c *trackerTestContext) aCustomerBought(tier string, quantity, productID int) error {
	if err := c.sell(tier, quantity, productID); err != nil {
		return err
	}
	return c.lastErr
}

func (c *trackerTestContext) theSaleSucceeds() error {
	if c.lastErr != nil {
		return fmt.Errorf("expected sale to succeed, got %v", c.lastErr)
	}
	return nil
}

func (c *trackerTestContext) theLastSaleHas(quantity int, gross, discount, net string) error {
	history := c.sales.History()
	if len(history) == 0 {
		return errors.New("ledger is empty")
	}
	sale := history[len(history)-1]

	if sale.Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, sale.Quantity)
	}
	checks := []struct {
		name string
		want string
		got  decimal.Decimal
	}{
		{"gross", gross, sale.GrossAmount},
		{"discount", discount, sale.DiscountAmount},
		{"net", net, sale.NetAmount},
	}
	for _, check := range checks {
		if !check.got.Equal(decimal.RequireFromString(check.want)) {
			return fmt.Errorf("expected %s %s, got %s", check.name, check.want, check.got)
		}
	}
	return nil
}

func (c *trackerTestContext) failsWith(substring string) error {
	if c.lastErr == nil {
		return errors.New("expected an error but the call succeeded")
	}
	if !strings.Contains(strings.ToLower(c.lastErr.Error()), strings.ToLower(substring)) {
		return fmt.Errorf("expected error containing %q, got %q", substring, c.lastErr.Error())
	}
	return nil
}

func (c *trackerTestContext) theLedgerHoldsSales(count int) error {
	if n := len(c.sales.History()); n != count {
		return fmt.Errorf("expected %d sales, got %d", count, n)
	}
	return nil
}

func (c *trackerTestContext) saleRecordedProduct(id int, name, brand string) error {
	for _, sale := range c.sales.History() {
		if sale.ID != id {
			continue
		}
		if sale.ProductName != name || sale.Brand != brand {
			return fmt.Errorf("expected %q by %q, got %q by %q", name, brand, sale.ProductName, sale.Brand)
		}
		return nil
	}
	return fmt.Errorf("sale %d not found", id)
}

func (c *trackerTestContext) iAskForSalesByBrand() error {
	c.brands, c.lastErr = c.reports.SalesByBrand()
	return nil
}

func (c *trackerTestContext) theBrandReportIs(table *godog.Table) error {
	rows := table.Rows[1:]
	if len(rows) != len(c.brands) {
		return fmt.Errorf("expected %d brands, got %d", len(rows), len(c.brands))
	}
	for i, row := range rows {
		got := c.brands[i]
		quantity, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		if got.Brand != row.Cells[0].Value || got.TotalQuantity != quantity {
			return fmt.Errorf("row %d: expected %s/%d, got %s/%d", i, row.Cells[0].Value, quantity, got.Brand, got.TotalQuantity)
		}
		if !got.TotalNet.Equal(decimal.RequireFromString(row.Cells[2].Value)) {
			return fmt.Errorf("row %d: expected net %s, got %s", i, row.Cells[2].Value, got.TotalNet)
		}
	}
	return nil
}

func (c *trackerTestContext) iAskForTheTopSellers() error {
	c.top, c.lastErr = c.reports.TopSellers(services.TopSellerLimit)
	return c.lastErr
}

func (c *trackerTestContext) theTopSellersAreProducts(list string) error {
	var got []string
	for _, p := range c.top {
		got = append(got, strconv.Itoa(p.ID))
	}
	var want []string
	for _, id := range strings.Split(list, ",") {
		want = append(want, strings.TrimSpace(id))
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected products %v, got %v", want, got)
	}
	return nil
}

func (c *trackerTestContext) iAskForTheIncomeReport() error {
	c.income, c.lastErr = c.reports.Income()
	return nil
}

func (c *trackerTestContext) grossMinusNetEqualsTheTotalDiscounts() error {
	if c.lastErr != nil {
		return c.lastErr
	}
	if diff := c.income.GrossIncome.Sub(c.income.NetIncome); !diff.Equal(c.income.TotalDiscounts) {
		return fmt.Errorf("gross-net is %s, discounts are %s", diff, c.income.TotalDiscounts)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &trackerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty inventory$`, tc.anEmptyInventory)
	ctx.Step(`^a product "([^"]*)" by "([^"]*)" priced (\d+(?:\.\d+)?) with stock (\d+)$`, tc.aProductPricedWithStock)
	ctx.Step(`^a "([^"]*)" customer bought (\d+) of product (\d+)$`, tc.aCustomerBought)

	// When steps
	ctx.Step(`^I add a product "([^"]*)" by "([^"]*)" in "([^"]*)" priced (\d+(?:\.\d+)?) with stock (\d+) and warranty (\d+)$`, tc.iAddAProduct)
	ctx.Step(`^I delete product (\d+)$`, tc.iDeleteProduct)
	ctx.Step(`^I update product (\d+) setting stock to (-?\d+) and price to (\d+(?:\.\d+)?)$`, tc.iUpdateProductSettingStockAndPrice)
	ctx.Step(`^a "([^"]*)" customer buys (\d+) of product (\d+)$`, tc.sell)
	ctx.Step(`^I ask for sales by brand$`, tc.iAskForSalesByBrand)
	ctx.Step(`^I ask for the top sellers$`, tc.iAskForTheTopSellers)
	ctx.Step(`^I ask for the income report$`, tc.iAskForTheIncomeReport)

	// Then steps
	ctx.Step(`^the product is created with id (\d+)$`, tc.theProductIsCreatedWithID)
	ctx.Step(`^product (\d+) has stock (\d+) and total sold (\d+)$`, tc.productHasStockAndTotalSold)
	ctx.Step(`^product (\d+) is priced (\d+(?:\.\d+)?)$`, tc.productIsPriced)
	ctx.Step(`^the update rejected field "([^"]*)"$`, tc.theUpdateRejectedField)
	ctx.Step(`^the sale succeeds$`, tc.theSaleSucceeds)
	ctx.Step(`^the last sale has quantity (\d+), gross (\d+(?:\.\d+)?), discount (\d+(?:\.\d+)?) and net (\d+(?:\.\d+)?)$`, tc.theLastSaleHas)
	ctx.Step(`^the (?:sale|report) fails with "([^"]*)"$`, tc.failsWith)
	ctx.Step(`^the ledger holds (\d+) sales?$`, tc.theLedgerHoldsSales)
	ctx.Step(`^sale (\d+) recorded product "([^"]*)" by "([^"]*)"$`, tc.saleRecordedProduct)
	ctx.Step(`^the brand report is:$`, tc.theBrandReportIs)
	ctx.Step(`^the top sellers are products ([\d, ]+)$`, tc.theTopSellersAreProducts)
	ctx.Step(`^gross minus net equals the total discounts$`, tc.grossMinusNetEqualsTheTotalDiscounts)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
