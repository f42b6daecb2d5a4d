// internal/csvstore/csvstore.go
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/javajoker/inventory-sales/internal/models"
)

var ErrNoRecords = errors.New("no records to save")

type field struct {
	name  string
	value string
}

// record is one CSV row with its column names, in column order.
type record []field

// writeRecords writes a header taken from the first record followed by every
// record's values. Later records are written in the first record's column order.
func writeRecords(w io.Writer, records []record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	header := make([]string, len(records[0]))
	for i, f := range records[0] {
		header[i] = f.name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for n, rec := range records {
		values := make(map[string]string, len(rec))
		for _, f := range rec {
			values[f.name] = f.value
		}
		row := make([]string, len(header))
		for i, name := range header {
			row[i] = values[name]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", n+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func productRecord(p models.Product) record {
	return record{
		{"id", strconv.Itoa(p.ID)},
		{"name", p.Name},
		{"brand", p.Brand},
		{"category", p.Category},
		{"unit_price", p.UnitPrice.String()},
		{"stock", strconv.Itoa(p.Stock)},
		{"warranty_months", strconv.Itoa(p.WarrantyMonths)},
		{"total_sold", strconv.Itoa(p.TotalSold)},
	}
}

func saleRecord(s models.Sale) record {
	return record{
		{"id", strconv.Itoa(s.ID)},
		{"date", s.Date.Format(models.DateLayout)},
		{"customer_name", s.CustomerName},
		{"customer_type", s.CustomerType.String()},
		{"product_id", strconv.Itoa(s.ProductID)},
		{"product_name", s.ProductName},
		{"brand", s.Brand},
		{"quantity", strconv.Itoa(s.Quantity)},
		{"unit_price", s.UnitPrice.String()},
		{"discount_rate", s.DiscountRate.String()},
		{"gross_amount", s.GrossAmount.String()},
		{"discount_amount", s.DiscountAmount.String()},
		{"net_amount", s.NetAmount.String()},
	}
}

func WriteProducts(w io.Writer, products []models.Product) error {
	records := make([]record, len(products))
	for i, p := range products {
		records[i] = productRecord(p)
	}
	return writeRecords(w, records)
}

func WriteSales(w io.Writer, sales []models.Sale) error {
	records := make([]record, len(sales))
	for i, s := range sales {
		records[i] = saleRecord(s)
	}
	return writeRecords(w, records)
}

// ReadProducts parses products from CSV with a header row. warranty_months
// and total_sold columns are optional and default to 0.
func ReadProducts(r io.Reader) ([]models.Product, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "name", "brand", "category", "unit_price", "stock"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var products []models.Product
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		p, err := parseProduct(row, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		products = append(products, p)
	}

	return products, nil
}

func parseProduct(row []string, columns map[string]int) (models.Product, error) {
	get := func(name string) string {
		if i, ok := columns[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	atoi := func(name string) (int, error) {
		raw := get(name)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", name, raw)
		}
		return v, nil
	}

	var p models.Product
	var err error
	if p.ID, err = atoi("id"); err != nil {
		return p, err
	}
	if p.Stock, err = atoi("stock"); err != nil {
		return p, err
	}
	if p.WarrantyMonths, err = atoi("warranty_months"); err != nil {
		return p, err
	}
	if p.TotalSold, err = atoi("total_sold"); err != nil {
		return p, err
	}
	if p.UnitPrice, err = decimal.NewFromString(get("unit_price")); err != nil {
		return p, fmt.Errorf("invalid unit_price %q", get("unit_price"))
	}

	p.Name, p.Brand, p.Category = get("name"), get("brand"), get("category")
	if p.Name == "" || p.Brand == "" || p.Category == "" {
		return p, errors.New("name, brand and category are required")
	}

	return p, nil
}

func LoadProductsFile(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadProducts(f)
}

func SaveProductsFile(path string, products []models.Product) error {
	return saveFile(path, func(w io.Writer) error { return WriteProducts(w, products) })
}

func SaveSalesFile(path string, sales []models.Sale) error {
	return saveFile(path, func(w io.Writer) error { return WriteSales(w, sales) })
}

func saveFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}
