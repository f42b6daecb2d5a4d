// internal/console/shell.go
package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/csvstore"
	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/i18n"
	"github.com/javajoker/inventory-sales/internal/models"
	"github.com/javajoker/inventory-sales/internal/services"
)

const rule = "========================================="

// Shell is the interactive menu over the inventory and the sales ledger.
type Shell struct {
	term      *Terminal
	inventory *services.InventoryService
	sales     *services.SalesService
	reports   *services.ReportService
	exportDir string
}

func NewShell(term *Terminal, store *database.Store, exportDir string) *Shell {
	return &Shell{
		term:      term,
		inventory: services.NewInventoryService(store),
		sales:     services.NewSalesService(store),
		reports:   services.NewReportService(store),
		exportDir: exportDir,
	}
}

type menuEntry struct {
	option int
	key    string
	run    func() error
}

func (s *Shell) mainMenu() []menuEntry {
	return []menuEntry{
		{1, i18n.KeyMenuList, s.withPause(s.listProducts)},
		{2, i18n.KeyMenuAdd, s.withPause(s.addProduct)},
		{3, i18n.KeyMenuUpdate, s.withPause(s.updateProduct)},
		{4, i18n.KeyMenuDelete, s.withPause(s.deleteProduct)},
		{5, i18n.KeyMenuSale, s.withPause(s.registerSale)},
		{6, i18n.KeyMenuHistory, s.withPause(s.showHistory)},
		{7, i18n.KeyMenuReports, s.reportsMenu},
		{8, i18n.KeyMenuExport, s.withPause(s.exportCSV)},
	}
}

func (s *Shell) reportEntries() []menuEntry {
	return []menuEntry{
		{1, i18n.KeyReportsTop, s.withPause(s.topSellers)},
		{2, i18n.KeyReportsBrand, s.withPause(s.salesByBrand)},
		{3, i18n.KeyReportsIncome, s.withPause(s.income)},
		{4, i18n.KeyReportsPerformance, s.withPause(s.inventoryPerformance)},
	}
}

// Run shows the main menu until the user exits or the input closes.
func (s *Shell) Run() error {
	err := s.loop(i18n.KeyMenuTitle, i18n.KeyMenuExit, s.mainMenu())
	if err != nil && !errors.Is(err, ErrInputClosed) {
		return err
	}
	s.term.Printf("\n%s\n\n", s.term.T(i18n.KeyAppGoodbye))
	return nil
}

func (s *Shell) reportsMenu() error {
	return s.loop(i18n.KeyReportsTitle, i18n.KeyReportsBack, s.reportEntries())
}

func (s *Shell) loop(titleKey, zeroKey string, entries []menuEntry) error {
	for {
		s.term.Println(rule)
		s.term.Printf("  %s\n", s.term.T(titleKey))
		s.term.Println(rule)
		for _, entry := range entries {
			s.term.Printf("%d. %s\n", entry.option, s.term.T(entry.key))
		}
		s.term.Printf("0. %s\n", s.term.T(zeroKey))
		s.term.Println(rule)

		choice, err := s.term.RequestInt(s.term.T(i18n.KeyMenuChoose), nil)
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}

		entry, ok := findEntry(entries, choice)
		if !ok {
			s.term.Printf("\n%s\n\n", s.term.T(i18n.KeyMenuInvalid))
			continue
		}
		if err := s.runCommand(entry.run); err != nil {
			return err
		}
	}
}

func findEntry(entries []menuEntry, option int) (menuEntry, bool) {
	for _, entry := range entries {
		if entry.option == option {
			return entry, true
		}
	}
	return menuEntry{}, false
}

// runCommand keeps the menu alive when a command panics. Only terminal
// errors are returned.
func (s *Shell) runCommand(run func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Console command failed")
			s.term.ReportError(s.term.T(i18n.KeyAppUnexpected, r))
			err = nil
		}
	}()
	return run()
}

func (s *Shell) withPause(run func() error) func() error {
	return func() error {
		if err := run(); err != nil {
			return err
		}
		return s.term.Pause()
	}
}

// reportServiceError prints a recoverable service error. Anything else is
// handed back to the caller.
func (s *Shell) reportServiceError(err error) error {
	var stockErr *services.StockError
	switch {
	case errors.As(err, &stockErr):
		s.term.ReportError(s.term.T(i18n.KeySaleInsufficientStock, stockErr.Available, stockErr.Requested))
	case errors.Is(err, services.ErrNoStock):
		s.term.ReportError(s.term.T(i18n.KeySaleNoStock))
	case errors.Is(err, services.ErrProductNotFound):
		s.term.ReportError(s.term.T(i18n.KeyProductNotFound))
	case errors.Is(err, services.ErrEmptyInventory):
		s.term.ReportError(s.term.T(i18n.KeyInventoryEmpty))
	case errors.Is(err, services.ErrNoSales):
		s.term.Printf("%s\n\n", s.term.T(i18n.KeySalesEmpty))
	case errors.Is(err, services.ErrInvalidInput):
		s.term.ReportError(err.Error())
	default:
		return err
	}
	return nil
}

func (s *Shell) header(key string) {
	s.term.Printf("\n=== %s ===\n", s.term.T(key))
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (s *Shell) listProducts() error {
	products := s.inventory.List()
	if len(products) == 0 {
		s.term.Printf("\n%s\n\n", s.term.T(i18n.KeyInventoryNone))
		return nil
	}

	s.term.Printf("\n--- %s ---\n", s.term.T(i18n.KeyHeaderInventory))
	for _, p := range products {
		s.term.Println(s.term.T(i18n.KeyRowProduct, p.ID, p.Name, p.Brand, p.Category, money(p.UnitPrice), p.Stock, p.WarrantyMonths))
	}
	s.term.Printf("-----------------\n\n")
	return nil
}

func (s *Shell) addProduct() error {
	s.header(i18n.KeyHeaderAdd)

	var req services.CreateProductRequest
	var err error
	zero := 0
	if req.Name, err = s.term.RequestText(s.term.T(i18n.KeyPromptName)); err != nil {
		return err
	}
	if req.Brand, err = s.term.RequestText(s.term.T(i18n.KeyPromptBrand)); err != nil {
		return err
	}
	if req.Category, err = s.term.RequestText(s.term.T(i18n.KeyPromptCategory)); err != nil {
		return err
	}
	if req.UnitPrice, err = s.term.RequestReal(s.term.T(i18n.KeyPromptPrice), &decimal.Zero); err != nil {
		return err
	}
	if req.Stock, err = s.term.RequestInt(s.term.T(i18n.KeyPromptStock), &zero); err != nil {
		return err
	}
	if req.WarrantyMonths, err = s.term.RequestInt(s.term.T(i18n.KeyPromptWarranty), &zero); err != nil {
		return err
	}

	product, err := s.inventory.Add(&req)
	if err != nil {
		return s.reportServiceError(err)
	}

	s.term.ReportSuccess(s.term.T(i18n.KeyProductCreated, product.Name, product.ID))
	return nil
}

// selectProduct lists the inventory and asks for an id. It reports false
// when the inventory is empty or the id is unknown.
func (s *Shell) selectProduct(promptKey string) (models.Product, bool, error) {
	if len(s.inventory.List()) == 0 {
		s.term.ReportError(s.term.T(i18n.KeyInventoryEmpty))
		return models.Product{}, false, nil
	}

	if err := s.listProducts(); err != nil {
		return models.Product{}, false, err
	}

	one := 1
	id, err := s.term.RequestInt(s.term.T(promptKey), &one)
	if err != nil {
		return models.Product{}, false, err
	}

	product, ok := s.inventory.FindByID(id)
	if !ok {
		s.term.ReportError(s.term.T(i18n.KeyProductNotFound))
		return models.Product{}, false, nil
	}
	return product, true, nil
}

func (s *Shell) updateProduct() error {
	s.header(i18n.KeyHeaderUpdate)

	product, ok, err := s.selectProduct(i18n.KeyPromptUpdateID)
	if err != nil || !ok {
		return err
	}

	s.term.Printf("%s\n\n", s.term.T(i18n.KeyProductKeepValue))

	var update models.ProductUpdate
	text := []struct {
		key     string
		current string
		target  **string
	}{
		{i18n.KeyPromptNewName, product.Name, &update.Name},
		{i18n.KeyPromptNewBrand, product.Brand, &update.Brand},
		{i18n.KeyPromptNewCategory, product.Category, &update.Category},
	}
	for _, field := range text {
		raw, err := s.term.RequestOptional(s.term.T(field.key, field.current))
		if err != nil {
			return err
		}
		if raw != "" {
			*field.target = &raw
		}
	}

	raw, err := s.term.RequestOptional(s.term.T(i18n.KeyPromptNewPrice, money(product.UnitPrice)))
	if err != nil {
		return err
	}
	if raw != "" {
		if price, err := decimal.NewFromString(raw); err != nil {
			s.term.ReportError(s.term.T(i18n.KeyInputInvalidNumberKeep))
		} else {
			update.UnitPrice = &price
		}
	}

	counts := []struct {
		key     string
		current int
		target  **int
	}{
		{i18n.KeyPromptNewStock, product.Stock, &update.Stock},
		{i18n.KeyPromptNewWarranty, product.WarrantyMonths, &update.WarrantyMonths},
	}
	for _, field := range counts {
		raw, err := s.term.RequestOptional(s.term.T(field.key, field.current))
		if err != nil {
			return err
		}
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			s.term.ReportError(s.term.T(i18n.KeyInputInvalidIntegerKeep))
			continue
		}
		*field.target = &value
	}

	result, err := s.inventory.Update(product.ID, update)
	if err != nil {
		return s.reportServiceError(err)
	}

	for _, rejected := range result.Rejected {
		s.term.ReportError(s.rejectionMessage(rejected))
	}
	s.term.ReportSuccess(s.term.T(i18n.KeyProductUpdated))
	return nil
}

var fieldLabels = map[string]string{
	"name":            i18n.KeyFieldName,
	"brand":           i18n.KeyFieldBrand,
	"category":        i18n.KeyFieldCategory,
	"unit_price":      i18n.KeyFieldUnitPrice,
	"stock":           i18n.KeyFieldStock,
	"warranty_months": i18n.KeyFieldWarranty,
}

func (s *Shell) rejectionMessage(rejected services.FieldError) string {
	label := s.term.T(fieldLabels[rejected.Field])
	switch rejected.Reason {
	case services.ReasonBlank:
		return s.term.T(i18n.KeyProductFieldBlank, label)
	case services.ReasonTooLarge:
		return s.term.T(i18n.KeyProductFieldTooLarge, label, models.MaxQuantity)
	}
	return s.term.T(i18n.KeyProductFieldNegative, label)
}

func (s *Shell) deleteProduct() error {
	s.header(i18n.KeyHeaderDelete)

	product, ok, err := s.selectProduct(i18n.KeyPromptDeleteID)
	if err != nil || !ok {
		return err
	}

	confirmed, err := s.term.Confirm(s.term.T(i18n.KeyProductDeleteConfirm, product.Name))
	if err != nil {
		return err
	}
	if !confirmed {
		s.term.Printf("\n%s\n\n", s.term.T(i18n.KeyProductDeleteCancelled))
		return nil
	}

	if _, err := s.inventory.Delete(product.ID); err != nil {
		return s.reportServiceError(err)
	}
	s.term.ReportSuccess(s.term.T(i18n.KeyProductDeleted))
	return nil
}

func (s *Shell) chooseCustomerType() (models.CustomerType, error) {
	s.term.Printf("\n%s\n", s.term.T(i18n.KeyCustomerTypes))
	labels := []string{i18n.KeyCustomerRegular, i18n.KeyCustomerVIP, i18n.KeyCustomerWholesale}
	for i, key := range labels {
		s.term.Printf("%d. %s\n", i+1, s.term.T(key))
	}

	types := models.CustomerTypes()
	for {
		option, err := s.term.RequestInt(s.term.T(i18n.KeyPromptCustomerType), nil)
		if err != nil {
			return models.CustomerRegular, err
		}
		if option >= 1 && option <= len(types) {
			return types[option-1], nil
		}
		s.term.ReportError(s.term.T(i18n.KeyCustomerInvalid))
	}
}

func (s *Shell) registerSale() error {
	s.header(i18n.KeyHeaderSale)

	if len(s.inventory.List()) == 0 {
		s.term.ReportError(s.term.T(i18n.KeyInventoryNone))
		return nil
	}

	var req services.RegisterSaleRequest
	var err error
	if req.CustomerName, err = s.term.RequestText(s.term.T(i18n.KeyPromptCustomerName)); err != nil {
		return err
	}
	if req.CustomerType, err = s.chooseCustomerType(); err != nil {
		return err
	}

	product, ok, err := s.selectProduct(i18n.KeyPromptSaleID)
	if err != nil || !ok {
		return err
	}
	if product.Stock <= 0 {
		s.term.ReportError(s.term.T(i18n.KeySaleNoStock))
		return nil
	}

	one := 1
	req.ProductID = product.ID
	if req.Quantity, err = s.term.RequestInt(s.term.T(i18n.KeyPromptQuantity), &one); err != nil {
		return err
	}

	sale, err := s.sales.RegisterSale(&req)
	if err != nil {
		return s.reportServiceError(err)
	}

	s.term.ReportSuccess(s.term.T(i18n.KeySaleRegistered))
	s.term.Println(s.term.T(i18n.KeyRowSaleSummary, sale.ID, sale.CustomerName, sale.ProductName, sale.Quantity,
		money(sale.GrossAmount), money(sale.DiscountAmount), money(sale.NetAmount)))
	return nil
}

func (s *Shell) showHistory() error {
	s.header(i18n.KeyHeaderHistory)

	history := s.sales.History()
	if len(history) == 0 {
		s.term.Printf("%s\n\n", s.term.T(i18n.KeySalesEmpty))
		return nil
	}

	for _, sale := range history {
		s.term.Println(s.term.T(i18n.KeyRowSale, sale.ID, sale.Date.Format(models.DateLayout),
			sale.CustomerName, sale.CustomerType, sale.ProductName, sale.Brand, sale.Quantity,
			money(sale.GrossAmount), money(sale.DiscountAmount), money(sale.NetAmount)))
	}
	s.term.Println()
	return nil
}

func (s *Shell) topSellers() error {
	s.header(i18n.KeyReportsTop)

	top, err := s.reports.TopSellers(services.TopSellerLimit)
	if err != nil {
		return s.reportServiceError(err)
	}
	if len(top) == 0 {
		s.term.Printf("%s\n\n", s.term.T(i18n.KeyReportNothingSold))
		return nil
	}

	for i, p := range top {
		s.term.Println(s.term.T(i18n.KeyRowTopSeller, i+1, p.Name, p.Brand, p.TotalSold))
	}
	s.term.Println()
	return nil
}

func (s *Shell) salesByBrand() error {
	s.header(i18n.KeyReportsBrand)

	brands, err := s.reports.SalesByBrand()
	if err != nil {
		return s.reportServiceError(err)
	}

	for _, b := range brands {
		s.term.Println(s.term.T(i18n.KeyRowBrand, b.Brand, b.TotalQuantity, money(b.TotalNet)))
	}
	s.term.Println()
	return nil
}

func (s *Shell) income() error {
	s.header(i18n.KeyReportsIncome)

	income, err := s.reports.Income()
	if err != nil {
		return s.reportServiceError(err)
	}

	s.term.Println(s.term.T(i18n.KeyRowIncomeGross, money(income.GrossIncome)))
	s.term.Println(s.term.T(i18n.KeyRowIncomeDiscounts, money(income.TotalDiscounts)))
	s.term.Println(s.term.T(i18n.KeyRowIncomeNet, money(income.NetIncome)))
	s.term.Println()
	return nil
}

func (s *Shell) inventoryPerformance() error {
	s.header(i18n.KeyReportsPerformance)

	rows, err := s.reports.InventoryPerformance()
	if err != nil {
		return s.reportServiceError(err)
	}

	for _, row := range rows {
		s.term.Println(s.term.T(i18n.KeyRowPerformance, row.Name, row.Brand, row.Stock, row.Sold, row.Turnover))
	}
	s.term.Println()
	return nil
}

// exportCSV writes products.csv and sales.csv into the export directory.
// An empty collection is skipped.
func (s *Shell) exportCSV() error {
	s.header(i18n.KeyHeaderExport)

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		s.term.ReportError(err.Error())
		return nil
	}

	products := s.inventory.List()
	sales := s.sales.History()

	exports := []struct {
		name  string
		count int
		save  func(string) error
	}{
		{"products.csv", len(products), func(path string) error { return csvstore.SaveProductsFile(path, products) }},
		{"sales.csv", len(sales), func(path string) error { return csvstore.SaveSalesFile(path, sales) }},
	}

	written := make([]int, len(exports))
	for i, export := range exports {
		path := filepath.Join(s.exportDir, export.name)
		err := export.save(path)
		switch {
		case errors.Is(err, csvstore.ErrNoRecords):
			continue
		case err != nil:
			logrus.WithError(err).WithField("path", path).Error("Export failed")
			s.term.ReportError(fmt.Sprintf("%s: %v", export.name, err))
			return nil
		}
		written[i] = export.count
	}

	logrus.WithFields(logrus.Fields{
		"dir":      s.exportDir,
		"products": written[0],
		"sales":    written[1],
	}).Info("CSV export completed")

	s.term.ReportSuccess(s.term.T(i18n.KeyExportDone, written[0], written[1], s.exportDir))
	return nil
}
