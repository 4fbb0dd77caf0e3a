package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Open opens the file at path and picks a reader by its extension:
// .csv and .txt are read as CSV, .xlsx and .xlsm as Excel workbooks.
// sheet is only used for workbooks.
func Open(path, sheet string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".txt", ".xlsx", ".xlsm":
	default:
		return nil, fmt.Errorf("unsupported file type: %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if ext == ".xlsx" || ext == ".xlsm" {
		defer f.Close()
		src, err := NewXLSX(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return src, nil
	}

	src, err := NewCSV(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	src.closer = f
	return src, nil
}
