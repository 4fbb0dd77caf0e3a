package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name: "nil error returns empty",
			err:  nil,
		},
		{
			name:        "missing file maps correctly",
			err:         errors.New("open data.csv: no such file or directory"),
			wantCode:    "FILE001",
			wantMessage: "File not found",
		},
		{
			name:        "csv parse error maps correctly",
			err:         errors.New("record on line 3: parse error on line 3, column 5: bare \" in non-quoted-field"),
			wantCode:    "FILE002",
			wantMessage: "File is not a valid CSV",
		},
		{
			name:        "broken workbook maps correctly",
			err:         errors.New("zip: not a valid zip file"),
			wantCode:    "FILE002",
			wantMessage: "File is not a valid workbook",
		},
		{
			name:        "unsupported extension maps correctly",
			err:         errors.New("unsupported file type: .pdf"),
			wantCode:    "FILE003",
			wantMessage: "File type is not supported",
		},
		{
			name:        "empty input maps correctly",
			err:         ErrNoHeader,
			wantCode:    "FILE004",
			wantMessage: "The file is empty",
		},
		{
			name:        "missing column maps correctly",
			err:         fmt.Errorf("%w: PID, URL", ErrMissingColumns),
			wantCode:    "VAL001",
			wantMessage: "Required column is missing",
		},
		{
			name:        "invalid data maps correctly",
			err:         ErrInvalidData,
			wantCode:    "VAL002",
			wantMessage: "The dataset contains invalid rows",
		},
		{
			name:        "cancellation maps correctly",
			err:         fmt.Errorf("probe urls: %w", context.Canceled),
			wantCode:    "RUN001",
			wantMessage: "Run was cancelled",
		},
		{
			name:        "deadline maps correctly",
			err:         fmt.Errorf("probe urls: %w", context.DeadlineExceeded),
			wantCode:    "RUN002",
			wantMessage: "Run timed out",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "unknown sheet maps correctly",
			err:         errors.New(`data.xlsx: read sheet "Redirects": sheet Redirects does not exist`),
			wantCode:    "FILE005",
			wantMessage: "Worksheet not found",
		},
		{
			name:        "config validation maps correctly",
			err:         errors.New("config validation: validation failed:\n  - REPORT_FORMAT (\"pdf\") must be one of: html, json"),
			wantCode:    "CFG001",
			wantMessage: "Configuration is invalid",
		},
		{
			name:        "config file parse maps correctly",
			err:         errors.New("config file: parse culturize.yaml: unexpected key"),
			wantCode:    "CFG001",
			wantMessage: "Configuration is invalid",
		},
		{
			name:        "config in a path is not a config error",
			err:         errors.New("configs/data.csv: permission denied"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "sheet in a file name is not a sheet error",
			err:         errors.New("timesheet.xlsx: permission denied"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("UNSUPPORTED FILE TYPE: .DOC"),
			wantCode:    "FILE003",
			wantMessage: "File type is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(MapError(errors.New("unsupported file type: .pdf")))

	expected := "File type is not supported. Use a .csv or .xlsx file (FILE003)"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	bare := FormatUserError(UserMessage{Message: "Oops", Code: "X1"})
	if bare != "Oops (X1)" {
		t.Errorf("FormatUserError() = %q, want %q", bare, "Oops (X1)")
	}
}

func TestDescribe(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidPID, CodeInvalidDocType, CodeMissingDocType, CodeInvalidURL,
		CodeInvalidEnabled, CodeURLUnreachable, CodeDuplicate,
	}
	for _, code := range codes {
		msg := Describe(code)
		if msg.Code != string(code) {
			t.Errorf("Describe(%s).Code = %q", code, msg.Code)
		}
		if msg.Message == "" || msg.Action == "" {
			t.Errorf("Describe(%s) = %+v, want message and action", code, msg)
		}
	}

	if got := Describe("E99"); got.Message != "Unknown row error" || got.Code != "E99" {
		t.Errorf("Describe(E99) = %+v", got)
	}
}
