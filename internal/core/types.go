package core

import "github.com/JonMunkholm/culturize/internal/config"

// ErrorCode identifies a single row validation failure category.
type ErrorCode string

const (
	CodeInvalidPID     ErrorCode = "E01"
	CodeInvalidDocType ErrorCode = "E02"
	CodeMissingDocType ErrorCode = "E03"
	CodeInvalidURL     ErrorCode = "E04"
	CodeInvalidEnabled ErrorCode = "E05"
	CodeURLUnreachable ErrorCode = "E06"
	CodeDuplicate      ErrorCode = "E07"
)

// Positions of the checked fields within Row.Columns.
const (
	ColPID = iota
	ColDocType
	ColURL
	ColEnabled
)

// DuplicateMarker is the affected-cell label of a duplicate row.
const DuplicateMarker = "duplicate"

// Field is one cell of a raw input row.
type Field struct {
	Header string
	Value  string
}

// RawRow is a parsed input row in file column order.
type RawRow []Field

// Lookup returns the value stored under header and its 1-based column position.
// The first matching header wins.
func (r RawRow) Lookup(header string) (value string, pos int, ok bool) {
	for i, f := range r {
		if f.Header == header {
			return f.Value, i + 1, true
		}
	}
	return "", 0, false
}

// RowSource yields raw rows of one dataset. Next returns io.EOF once exhausted.
type RowSource interface {
	Header() []string
	Next() (RawRow, error)
}

// Fields holds the trimmed values of a row's checked cells.
type Fields struct {
	PID     string `json:"pid"`
	DocType string `json:"docType"`
	URL     string `json:"url"`
	Enabled string `json:"enabled"`
}

// Options controls how raw rows are mapped and checked.
type Options struct {
	PIDColumn      string
	URLColumn      string
	EnabledColumn  string
	DocTypeColumn  string
	AllowNoDocType bool
}

// DefaultOptions returns the stock column names with empty document types allowed.
func DefaultOptions() Options {
	return Options{
		PIDColumn:      "PID",
		URLColumn:      "URL",
		EnabledColumn:  "enabled",
		DocTypeColumn:  "document type",
		AllowNoDocType: true,
	}
}

// OptionsFromConfig maps the CSV configuration section to Options.
func OptionsFromConfig(c config.CSVConfig) Options {
	return Options{
		PIDColumn:      c.PIDColumn,
		URLColumn:      c.URLColumn,
		EnabledColumn:  c.EnabledColumn,
		DocTypeColumn:  c.DocTypeColumn,
		AllowNoDocType: c.AllowNoDocType,
	}
}
