package core

import (
	"strings"
	"sync"
)

// FirstDataRow is the sheet row number of the first data row; row 1 is the header.
const FirstDataRow = 2

// NotDuplicate is the DuplicateOf value of a row that duplicates nothing.
const NotDuplicate = -1

// Row is one checked dataset entry.
//
// Index, Columns, Fields and Valid are fixed at construction. The outcome
// (errors, affected cells, duplicate and liveness state) is annotated later by
// the duplicate pass and the liveness probe and is safe for concurrent use.
type Row struct {
	Index   int       // Sheet row number
	Columns [4]string // Column letters of PID, document type, URL and enabled
	Fields
	Valid bool // No structural error (E01-E05) at construction

	outcome outcome
}

// outcome is the mutable part of a Row.
type outcome struct {
	mu            sync.Mutex
	errors        []ErrorCode
	affectedCells []string
	duplicateOf   int
	urlChecked    bool
	urlWorking    bool
}

// NewRow trims the raw field values and runs the structural checks.
// Most callers should use RowFactory.Create, which also numbers rows.
func NewRow(index int, columns [4]string, raw Fields, allowNoDocType bool) *Row {
	r := &Row{
		Index:   index,
		Columns: columns,
		Fields: Fields{
			PID:     strings.TrimSpace(raw.PID),
			DocType: strings.TrimSpace(raw.DocType),
			URL:     strings.TrimSpace(raw.URL),
			Enabled: strings.TrimSpace(raw.Enabled),
		},
	}
	r.outcome.duplicateOf = NotDuplicate
	r.Valid = r.validate(allowNoDocType)
	return r
}

func (r *Row) cellRef(col int) string {
	return CellRef(r.Columns[col], r.Index)
}

func (r *Row) addError(code ErrorCode, cell string) {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	r.outcome.errors = append(r.outcome.errors, code)
	r.outcome.affectedCells = append(r.outcome.affectedCells, cell)
}

// Errors returns the row's error codes in the order they were raised.
func (r *Row) Errors() []ErrorCode {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return append([]ErrorCode(nil), r.outcome.errors...)
}

// HasError reports whether code has been raised on the row.
func (r *Row) HasError(code ErrorCode) bool {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return r.hasErrorLocked(code)
}

func (r *Row) hasErrorLocked(code ErrorCode) bool {
	for _, c := range r.outcome.errors {
		if c == code {
			return true
		}
	}
	return false
}

// HasErrors reports whether any error has been raised on the row.
func (r *Row) HasErrors() bool {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return len(r.outcome.errors) > 0
}

// AffectedCells returns the cell references (or the duplicate marker) of the
// row's errors.
func (r *Row) AffectedCells() []string {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return append([]string(nil), r.outcome.affectedCells...)
}

// DuplicateOf returns the index of the row this one duplicates, or NotDuplicate.
func (r *Row) DuplicateOf() int {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return r.outcome.duplicateOf
}

// IsDuplicate reports whether the row has been marked as a duplicate.
func (r *Row) IsDuplicate() bool {
	return r.DuplicateOf() != NotDuplicate
}

// MarkAsDuplicateOf records that the row repeats the row at otherIndex.
// E07 and the duplicate marker are added at most once; repeated calls only
// update DuplicateOf. Valid is left untouched.
func (r *Row) MarkAsDuplicateOf(otherIndex int) {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()

	r.outcome.duplicateOf = otherIndex
	if !r.hasErrorLocked(CodeDuplicate) {
		r.outcome.errors = append(r.outcome.errors, CodeDuplicate)
	}
	for _, cell := range r.outcome.affectedCells {
		if cell == DuplicateMarker {
			return
		}
	}
	r.outcome.affectedCells = append(r.outcome.affectedCells, DuplicateMarker)
}

// URLChecked reports whether a liveness probe has been attempted.
func (r *Row) URLChecked() bool {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return r.outcome.urlChecked
}

// URLWorking reports the probe result. Only meaningful when URLChecked is true.
func (r *Row) URLWorking() bool {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	return r.outcome.urlWorking
}

func (r *Row) markChecked() {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	r.outcome.urlChecked = true
	r.outcome.urlWorking = false
}

// setURLWorking stores the probe result; a failed probe raises E06.
func (r *Row) setURLWorking(working bool) {
	r.outcome.mu.Lock()
	defer r.outcome.mu.Unlock()
	r.outcome.urlWorking = working
	if !working {
		r.outcome.errors = append(r.outcome.errors, CodeURLUnreachable)
	}
}

// ValidAndEnabled reports whether the row passed the structural checks and is
// switched on, i.e. whether it should be converted into a redirect.
func (r *Row) ValidAndEnabled() bool {
	return r.Valid && r.Enabled == "1"
}

// Blocking reports whether the row fails a run that does not ignore invalid
// data: structural errors and duplicates block, an unreachable URL alone does not.
func (r *Row) Blocking() bool {
	return !r.Valid || r.IsDuplicate()
}
