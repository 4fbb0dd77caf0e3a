package core

import "testing"

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{4, "D"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{78, "BZ"},
		{702, "ZZ"},
		{703, "AAA"},
		{0, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := ColumnLetter(tt.n); got != tt.want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestColumnLetter_BeyondLastColumn(t *testing.T) {
	if got := ColumnLetter(16384); got != "XFD" {
		t.Errorf("ColumnLetter(16384) = %q, want %q", got, "XFD")
	}
	if got := ColumnLetter(16385); got != "" {
		t.Errorf("ColumnLetter(16385) = %q, want empty", got)
	}
}

func TestCellRef(t *testing.T) {
	if got := CellRef("C", 7); got != "C7" {
		t.Errorf("CellRef(C, 7) = %q, want %q", got, "C7")
	}
	if got := CellRef("", 12); got != "12" {
		t.Errorf("CellRef(\"\", 12) = %q, want %q", got, "12")
	}
}
