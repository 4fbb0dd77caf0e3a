package core

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ColumnLetter converts a 1-based column position to its spreadsheet label
// (1 -> "A", 26 -> "Z", 27 -> "AA", 52 -> "AZ").
// Positions below 1 mean the column is absent and yield "". Positions past
// the last spreadsheet column (XFD) also yield "".
func ColumnLetter(n int) string {
	if n < 1 {
		return ""
	}
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return ""
	}
	return name
}

// CellRef returns a cell reference such as "C7". An absent column yields
// just the row number.
func CellRef(column string, row int) string {
	return column + strconv.Itoa(row)
}
