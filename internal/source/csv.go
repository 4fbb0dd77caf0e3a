// Package source turns CSV and Excel files into rows for the checker.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/culturize/internal/core"
)

// Source is a RowSource backed by an open file.
type Source interface {
	core.RowSource
	Close() error
}

// CSV streams rows from comma-separated input. The first record is the header.
type CSV struct {
	r      *csv.Reader
	header []string
	closer io.Closer
}

// NewCSV reads the header from r and returns a source positioned at the first
// data row. Input without any record yields core.ErrNoHeader.
func NewCSV(r io.Reader) (*CSV, error) {
	cr := csv.NewReader(NewCleanReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, core.ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	return &CSV{r: cr, header: cleanHeader(header)}, nil
}

// Header returns the trimmed column names.
func (s *CSV) Header() []string {
	return s.header
}

// Next returns the next non-blank record, or io.EOF.
func (s *CSV) Next() (core.RawRow, error) {
	for {
		rec, err := s.r.Read()
		if err != nil {
			return nil, err
		}
		if isBlank(rec) {
			continue
		}
		return toRawRow(s.header, rec), nil
	}
}

// Close closes the underlying file, if any.
func (s *CSV) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = cleanHeaderName(h)
	}
	return out
}

// cleanHeaderName trims a column name and strips the ="..." wrapper and
// surrounding quotes that spreadsheet exports put around text cells.
func cleanHeaderName(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.TrimSpace(strings.Trim(s, `"'`))
}

// toRawRow pairs the cells of rec with their headers. Cells beyond the header
// are dropped and missing trailing cells stay absent.
func toRawRow(header, rec []string) core.RawRow {
	n := len(rec)
	if n > len(header) {
		n = len(header)
	}
	raw := make(core.RawRow, n)
	for i := 0; i < n; i++ {
		raw[i] = core.Field{Header: header[i], Value: rec[i]}
	}
	return raw
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
