package core

import (
	"strconv"
	"strings"
)

// CellStatus classifies a report cell.
type CellStatus string

const (
	CellOK    CellStatus = "ok"
	CellError CellStatus = "error"
)

// Liveness is the three-state outcome of the URL probe.
type Liveness string

const (
	LivenessNotChecked Liveness = "not-checked"
	LivenessWorking    Liveness = "working"
	LivenessFailing    Liveness = "failing"
)

// Row classes used for report styling.
const (
	ClassValid   = "valid"
	ClassInvalid = "invalid"
)

// Cell is one rendered report cell. Title carries the hover text, which for
// error cells is the reason.
type Cell struct {
	Text   string     `json:"text"`
	Title  string     `json:"title,omitempty"`
	Status CellStatus `json:"status"`
}

// IsError reports whether the cell is flagged.
func (c Cell) IsError() bool {
	return c.Status == CellError
}

// ReportEntry is the presentation-ready view of one Row.
type ReportEntry struct {
	Index         int         `json:"index"`
	Class         string      `json:"class"`
	Errors        []ErrorCode `json:"errors"`
	AffectedCells []string    `json:"affectedCells"`
	DuplicateOf   int         `json:"duplicateOf"`

	Enabled  Cell     `json:"enabled"`
	DocType  Cell     `json:"docType"`
	PID      Cell     `json:"pid"`
	URL      Cell     `json:"url"`
	Affected Cell     `json:"affected"`
	Check    Cell     `json:"check"`
	Liveness Liveness `json:"liveness"`
}

// Render maps a row's state to report cells. Each cell's status depends only
// on which error codes the row carries.
func Render(row *Row) ReportEntry {
	errs := row.Errors()
	affected := row.AffectedCells()
	has := func(code ErrorCode) bool {
		for _, c := range errs {
			if c == code {
				return true
			}
		}
		return false
	}

	e := ReportEntry{
		Index:         row.Index,
		Class:         ClassValid,
		Errors:        errs,
		AffectedCells: affected,
		DuplicateOf:   row.DuplicateOf(),
	}
	if len(errs) > 0 {
		e.Class = ClassInvalid
	}

	e.Enabled = okCell(row.Enabled)
	if has(CodeInvalidEnabled) {
		e.Enabled = errorCell(row.Enabled, "not 0 or 1")
	}

	e.DocType = okCell(row.DocType)
	switch {
	case has(CodeInvalidDocType):
		e.DocType = errorCell(row.DocType, "Invalid characters")
	case has(CodeMissingDocType):
		e.DocType = errorCell(row.DocType, "No document type specified")
	}

	e.PID = okCell(row.PID)
	if has(CodeInvalidPID) {
		e.PID = errorCell(row.PID, "Invalid characters")
	}

	switch {
	case has(CodeInvalidURL) && row.URL == "":
		e.URL = Cell{Text: "no URL", Title: row.URL, Status: CellError}
	case has(CodeInvalidURL):
		e.URL = Cell{Text: "invalid URL", Title: row.URL, Status: CellError}
	default:
		e.URL = Cell{Text: "valid URL", Title: row.URL, Status: CellOK}
	}

	e.Affected = okCell(strings.Join(affected, ","))
	if has(CodeDuplicate) {
		e.Affected = errorCell(e.Affected.Text,
			"doctype, pid combination is duplicate of row "+strconv.Itoa(e.DuplicateOf))
	}

	switch {
	case !row.URLChecked():
		e.Liveness = LivenessNotChecked
		e.Check = Cell{Text: "?", Title: "URL not tested", Status: CellOK}
	case row.URLWorking():
		e.Liveness = LivenessWorking
		e.Check = Cell{Text: "✓", Status: CellOK}
	default:
		e.Liveness = LivenessFailing
		e.Check = errorCell("✗", "URL unavailable")
	}

	return e
}

func okCell(text string) Cell {
	return Cell{Text: text, Status: CellOK}
}

func errorCell(text, reason string) Cell {
	return Cell{Text: text, Title: reason, Status: CellError}
}
