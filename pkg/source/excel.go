package source

import (
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pchuan98/livecharts/pkg/errors"
)

// ReadColumn reads the numeric cells of column in sheet. The first sheet
// is used when sheet is empty. With header set the first row is skipped.
// Empty cells read as 0 so indexes stay aligned with other columns;
// trailing empty cells are dropped.
func ReadColumn(path, sheet, column string, header bool) ([]float64, error) {
	cells, err := readColumn(path, sheet, column, header)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(c, ",", ""), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s!%s%d: %q is not a number", sheet, column, rowNumber(i, header), c)
		}
		values[i] = v
	}
	return values, nil
}

// ReadLabels reads column as strings, with the same rules as ReadColumn.
func ReadLabels(path, sheet, column string, header bool) ([]string, error) {
	return readColumn(path, sheet, column, header)
}

func readColumn(path, sheet, column string, header bool) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "spreadsheet %s not found", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeSheetNotFound, "sheet %q not found in %s", sheet, path)
	}
	col, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "column %q", column)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheet)
	}
	if header && len(rows) > 0 {
		rows = rows[1:]
	}

	cells := make([]string, len(rows))
	last := -1
	for i, row := range rows {
		if col-1 < len(row) {
			cells[i] = strings.TrimSpace(row[col-1])
		}
		if cells[i] != "" {
			last = i
		}
	}
	return cells[:last+1], nil
}

func rowNumber(i int, header bool) int {
	if header {
		return i + 2
	}
	return i + 1
}
