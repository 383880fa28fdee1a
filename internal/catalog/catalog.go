// Package catalog loads the material price list from CSV or Excel
// sources. It detects the CSV delimiter automatically, resolves columns
// by header name, and keeps every row in source order so duplicate
// entries stay visible to the cost calculation.
package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rooftroops/estimator/internal/model"
)

// Result holds a loaded price catalog plus any per-row warnings. A
// warning never removes a priced row; dropped rows are blank-name only.
type Result struct {
	Catalog  model.PriceCatalog
	Warnings []string
}

// columnMapping holds the index of each catalog column in the source.
type columnMapping struct {
	name  int
	unit  int
	price int
}

// headerAliases maps each column role to its accepted header spellings
// (compared lowercase after trimming).
var headerAliases = map[string][]string{
	"name":  {"item_name", "item name", "item", "material", "name"},
	"unit":  {"unit_type", "unit type", "unit", "uom"},
	"price": {"price_per_unit", "price per unit", "unit_price", "unit price", "price"},
}

// LoadFile loads a price list, picking the reader from the file
// extension: .xlsx and .xlsm via Excel, everything else as CSV.
// A missing or unreadable source is an error; no partial catalog is
// ever returned.
func LoadFile(path string) (Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadExcel(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV loads a price list from a delimited text file. The header row
// is required; the delimiter is detected from the content.
func LoadCSV(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("cannot open price list: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, errors.New("price list is empty")
	}

	var warnings []string
	delimiter := detectDelimiter(data)
	if delimiter != ',' {
		name := map[rune]string{';': "semicolon", '\t': "tab"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("detected %s delimiter", name))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("cannot read price list: %w", err)
	}

	return fromRows(records, "line", warnings)
}

// detectDelimiter picks the separator that splits the content into the
// most consistent multi-column rows. Comma wins ties.
func detectDelimiter(data []byte) rune {
	best := ','
	bestScore := 0
	for _, candidate := range []rune{',', ';', '\t'} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = candidate
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		cols := len(records[0])
		if cols < 2 {
			continue
		}

		consistent := 0
		for _, rec := range records {
			if len(rec) == cols {
				consistent++
			}
		}
		score := consistent*10 + cols
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best
}

// mapColumns resolves the three catalog columns from the header row.
// All three are required; anything less means the source is not a
// price list.
func mapColumns(header []string) (columnMapping, error) {
	mapping := columnMapping{name: -1, unit: -1, price: -1}
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				switch role {
				case "name":
					if mapping.name == -1 {
						mapping.name = i
					}
				case "unit":
					if mapping.unit == -1 {
						mapping.unit = i
					}
				case "price":
					if mapping.price == -1 {
						mapping.price = i
					}
				}
			}
		}
	}

	var missing []string
	if mapping.name == -1 {
		missing = append(missing, "item_name")
	}
	if mapping.unit == -1 {
		missing = append(missing, "unit_type")
	}
	if mapping.price == -1 {
		missing = append(missing, "price_per_unit")
	}
	if len(missing) > 0 {
		return mapping, fmt.Errorf("required columns not found in header: %s", strings.Join(missing, ", "))
	}
	return mapping, nil
}

// getCell safely retrieves a trimmed cell value from a row by index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// fromRows is the shared load path for CSV and Excel data. The first
// row must be the header. Rows with a blank normalized name are
// dropped; an unreadable price degrades to 0.00 and the row is kept.
func fromRows(rows [][]string, rowPrefix string, warnings []string) (Result, error) {
	if len(rows) == 0 {
		return Result{}, errors.New("price list has no header row")
	}
	mapping, err := mapColumns(rows[0])
	if err != nil {
		return Result{}, err
	}

	var items []model.CatalogItem
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := strings.ToLower(getCell(row, mapping.name))
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("%s: blank item name, row dropped", rowLabel))
			continue
		}

		unit := strings.ToLower(getCell(row, mapping.unit))

		priceStr := getCell(row, mapping.price)
		price, perr := strconv.ParseFloat(priceStr, 64)
		if perr != nil {
			warnings = append(warnings, fmt.Sprintf("%s: unreadable price %q, using 0.00", rowLabel, priceStr))
			price = 0.0
		}

		items = append(items, model.CatalogItem{Name: name, UnitType: unit, UnitPrice: price})
	}

	return Result{Catalog: model.NewPriceCatalog(items), Warnings: warnings}, nil
}
