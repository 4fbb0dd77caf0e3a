package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender_ValidRow(t *testing.T) {
	row := NewRow(2, abcd, Fields{PID: "abc", DocType: "book", URL: "https://example.com", Enabled: "1"}, true)

	got := Render(row)

	want := ReportEntry{
		Index:       2,
		Class:       ClassValid,
		DuplicateOf: NotDuplicate,
		Enabled:     Cell{Text: "1", Status: CellOK},
		DocType:     Cell{Text: "book", Status: CellOK},
		PID:         Cell{Text: "abc", Status: CellOK},
		URL:         Cell{Text: "valid URL", Title: "https://example.com", Status: CellOK},
		Affected:    Cell{Text: "", Status: CellOK},
		Check:       Cell{Text: "?", Title: "URL not tested", Status: CellOK},
		Liveness:    LivenessNotChecked,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ErrorCells(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		allow  bool
		cell   func(ReportEntry) Cell
		want   Cell
	}{
		{
			name:   "invalid enabled",
			fields: Fields{PID: "a", URL: "http://x.org", Enabled: "2"},
			allow:  true,
			cell:   func(e ReportEntry) Cell { return e.Enabled },
			want:   Cell{Text: "2", Title: "not 0 or 1", Status: CellError},
		},
		{
			name:   "invalid doctype",
			fields: Fields{PID: "a", DocType: "x y", URL: "http://x.org", Enabled: "1"},
			allow:  true,
			cell:   func(e ReportEntry) Cell { return e.DocType },
			want:   Cell{Text: "x y", Title: "Invalid characters", Status: CellError},
		},
		{
			name:   "missing doctype",
			fields: Fields{PID: "a", URL: "http://x.org", Enabled: "1"},
			cell:   func(e ReportEntry) Cell { return e.DocType },
			want:   Cell{Text: "", Title: "No document type specified", Status: CellError},
		},
		{
			name:   "invalid pid",
			fields: Fields{PID: "a/b", URL: "http://x.org", Enabled: "1"},
			allow:  true,
			cell:   func(e ReportEntry) Cell { return e.PID },
			want:   Cell{Text: "a/b", Title: "Invalid characters", Status: CellError},
		},
		{
			name:   "empty url",
			fields: Fields{PID: "a", Enabled: "1"},
			allow:  true,
			cell:   func(e ReportEntry) Cell { return e.URL },
			want:   Cell{Text: "no URL", Status: CellError},
		},
		{
			name:   "invalid url",
			fields: Fields{PID: "a", URL: "ftp://x.org", Enabled: "1"},
			allow:  true,
			cell:   func(e ReportEntry) Cell { return e.URL },
			want:   Cell{Text: "invalid URL", Title: "ftp://x.org", Status: CellError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Render(NewRow(9, abcd, tt.fields, tt.allow))
			if diff := cmp.Diff(tt.want, tt.cell(e)); diff != "" {
				t.Errorf("cell mismatch (-want +got):\n%s", diff)
			}
			if e.Class != ClassInvalid {
				t.Errorf("Class = %q, want %q", e.Class, ClassInvalid)
			}
		})
	}
}

// A cell's status depends only on its own error code.
func TestRender_CellsAreIndependent(t *testing.T) {
	e := Render(NewRow(4, abcd, Fields{PID: "a", DocType: "t", URL: "http://x.org", Enabled: "yes"}, true))

	if !e.Enabled.IsError() {
		t.Error("Enabled cell should be flagged")
	}
	for name, c := range map[string]Cell{"PID": e.PID, "DocType": e.DocType, "URL": e.URL, "Check": e.Check} {
		if c.IsError() {
			t.Errorf("%s cell flagged by an unrelated error", name)
		}
	}
	if e.Affected.Text != "D4" {
		t.Errorf("Affected.Text = %q, want %q", e.Affected.Text, "D4")
	}
}

func TestRender_Duplicate(t *testing.T) {
	row := NewRow(6, abcd, Fields{PID: "a b", DocType: "t", URL: "http://x.org", Enabled: "1"}, true)
	row.MarkAsDuplicateOf(3)

	e := Render(row)

	want := Cell{
		Text:   "A6," + DuplicateMarker,
		Title:  "doctype, pid combination is duplicate of row 3",
		Status: CellError,
	}
	if diff := cmp.Diff(want, e.Affected); diff != "" {
		t.Errorf("Affected mismatch (-want +got):\n%s", diff)
	}
	if e.DuplicateOf != 3 {
		t.Errorf("DuplicateOf = %d, want 3", e.DuplicateOf)
	}
}

func TestRender_Liveness(t *testing.T) {
	working := probeRow(2, "http://x.org")
	working.markChecked()
	working.setURLWorking(true)

	failing := probeRow(3, "http://x.org")
	failing.markChecked()
	failing.setURLWorking(false)

	tests := []struct {
		name     string
		row      *Row
		want     Cell
		liveness Liveness
		class    string
	}{
		{"not checked", probeRow(4, "http://x.org"), Cell{Text: "?", Title: "URL not tested", Status: CellOK}, LivenessNotChecked, ClassValid},
		{"working", working, Cell{Text: "✓", Status: CellOK}, LivenessWorking, ClassValid},
		{"failing", failing, Cell{Text: "✗", Title: "URL unavailable", Status: CellError}, LivenessFailing, ClassInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Render(tt.row)
			if diff := cmp.Diff(tt.want, e.Check); diff != "" {
				t.Errorf("Check mismatch (-want +got):\n%s", diff)
			}
			if e.Liveness != tt.liveness {
				t.Errorf("Liveness = %q, want %q", e.Liveness, tt.liveness)
			}
			if e.Class != tt.class {
				t.Errorf("Class = %q, want %q", e.Class, tt.class)
			}
		})
	}
}
