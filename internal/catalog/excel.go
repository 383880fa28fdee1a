package catalog

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadExcel loads a price list from the first sheet of an Excel
// workbook. Column resolution and row semantics match the CSV path.
func LoadExcel(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("cannot open price list: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, errors.New("price list workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Result{}, fmt.Errorf("cannot read price list: %w", err)
	}

	return fromRows(rows, "row", nil)
}
