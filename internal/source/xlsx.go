package source

import (
	"fmt"
	"io"

	"github.com/JonMunkholm/culturize/internal/core"
	"github.com/xuri/excelize/v2"
)

// XLSX serves rows from one worksheet of an Excel workbook. The sheet is
// loaded completely when the source is created.
type XLSX struct {
	sheet  string
	header []string
	rows   [][]string
	pos    int
}

// NewXLSX reads sheet from the workbook in r. An empty sheet name selects the
// first sheet.
func NewXLSX(r io.Reader, sheet string) (*XLSX, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, core.ErrNoHeader
	}

	return &XLSX{
		sheet:  sheet,
		header: cleanHeader(rows[0]),
		rows:   rows[1:],
	}, nil
}

// Sheet returns the name of the worksheet being read.
func (s *XLSX) Sheet() string {
	return s.sheet
}

// Header returns the trimmed column names.
func (s *XLSX) Header() []string {
	return s.header
}

// Next returns the next non-blank row, or io.EOF.
func (s *XLSX) Next() (core.RawRow, error) {
	for s.pos < len(s.rows) {
		rec := s.rows[s.pos]
		s.pos++
		if isBlank(rec) {
			continue
		}
		return toRawRow(s.header, rec), nil
	}
	return nil, io.EOF
}

// Close is a no-op; the workbook is released once its rows are loaded.
func (s *XLSX) Close() error {
	return nil
}
