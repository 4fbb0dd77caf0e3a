package core

import "sync/atomic"

// RowFactory builds Rows from raw input rows and numbers them.
//
// The factory owns the row counter of one run: the first row it creates gets
// FirstDataRow and every further row the next number. Rows that are skipped
// do not consume a number.
type RowFactory struct {
	opts Options
	next atomic.Int64
}

// NewRowFactory creates a factory whose first row is numbered FirstDataRow.
func NewRowFactory(opts Options) *RowFactory {
	f := &RowFactory{opts: opts}
	f.next.Store(FirstDataRow)
	return f
}

// Create builds and checks a Row from raw.
// It returns false, without consuming a row number, when raw lacks the PID,
// URL or enabled column, or the document type column while empty document
// types are not allowed.
func (f *RowFactory) Create(raw RawRow) (*Row, bool) {
	pid, pidPos, ok := raw.Lookup(f.opts.PIDColumn)
	if !ok {
		return nil, false
	}
	url, urlPos, ok := raw.Lookup(f.opts.URLColumn)
	if !ok {
		return nil, false
	}
	docType, docTypePos, ok := raw.Lookup(f.opts.DocTypeColumn)
	if !ok && !f.opts.AllowNoDocType {
		return nil, false
	}
	enabled, enabledPos, ok := raw.Lookup(f.opts.EnabledColumn)
	if !ok {
		return nil, false
	}

	columns := [4]string{
		ColPID:     ColumnLetter(pidPos),
		ColDocType: ColumnLetter(docTypePos),
		ColURL:     ColumnLetter(urlPos),
		ColEnabled: ColumnLetter(enabledPos),
	}

	index := int(f.next.Add(1) - 1)
	return NewRow(index, columns, Fields{
		PID:     pid,
		DocType: docType,
		URL:     url,
		Enabled: enabled,
	}, f.opts.AllowNoDocType), true
}

// Next returns the number the next created row will get.
func (f *RowFactory) Next() int {
	return int(f.next.Load())
}
