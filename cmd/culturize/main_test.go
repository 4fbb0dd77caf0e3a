package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/culturize/internal/config"
	"github.com/JonMunkholm/culturize/internal/core"
)

const dataset = "PID,document type,URL,enabled\n" +
	"a,book,https://example.com,1\n" +
	"b,book,not a url,1\n" +
	"a,book,https://example.org,0\n"

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(dataset), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCheck_JSON(t *testing.T) {
	t.Setenv(config.FileEnv, "")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	err := runCheck(context.Background(), &out, writeDataset(t), checkFlags{format: "json", noProbe: true})
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	var doc struct {
		Summary core.Summary `json:"summary"`
		Rows    []struct {
			Index  int              `json:"index"`
			Errors []core.ErrorCode `json:"errors"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, out.String())
	}
	if doc.Summary.Total != 3 || doc.Summary.Duplicates != 1 || doc.Summary.Probed != 0 {
		t.Errorf("Summary = %+v", doc.Summary)
	}
	if len(doc.Rows) != 3 || doc.Rows[2].Index != 4 {
		t.Errorf("rows = %+v", doc.Rows)
	}
}

func TestRunCheck_UpperCaseFormat(t *testing.T) {
	t.Setenv(config.FileEnv, "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REPORT_FORMAT", "HTML")

	var out bytes.Buffer
	if err := runCheck(context.Background(), &out, writeDataset(t), checkFlags{noProbe: true}); err != nil {
		t.Fatalf("runCheck() with REPORT_FORMAT=HTML error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "<!DOCTYPE html>") {
		t.Error("REPORT_FORMAT=HTML did not produce a page")
	}

	out.Reset()
	if err := runCheck(context.Background(), &out, writeDataset(t), checkFlags{format: "JSON", noProbe: true}); err != nil {
		t.Fatalf("runCheck() with --format JSON error = %v", err)
	}
	if !json.Valid(out.Bytes()) {
		t.Error("--format JSON did not produce JSON")
	}
}

func TestRunCheck_StrictWritesReport(t *testing.T) {
	t.Setenv(config.FileEnv, "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CSV_IGNORE_ON_INVALID_DATA", "false")

	reportPath := filepath.Join(t.TempDir(), "report.html")
	err := runCheck(context.Background(), &bytes.Buffer{}, writeDataset(t), checkFlags{output: reportPath, noProbe: true})
	if !errors.Is(err, core.ErrInvalidData) {
		t.Fatalf("runCheck() error = %v, want ErrInvalidData", err)
	}

	html, readErr := os.ReadFile(reportPath)
	if readErr != nil {
		t.Fatalf("report not written: %v", readErr)
	}
	if !strings.Contains(string(html), "invalid URL") {
		t.Error("report does not flag the invalid URL")
	}
	if got := core.MapError(err).Code; got != "VAL002" {
		t.Errorf("MapError code = %q, want VAL002", got)
	}
}

func TestRunCheck_Errors(t *testing.T) {
	t.Setenv(config.FileEnv, "")
	t.Setenv("LOG_LEVEL", "error")

	tests := []struct {
		name     string
		path     string
		flags    checkFlags
		wantCode string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.csv"), checkFlags{}, "FILE001"},
		{"unsupported type", filepath.Join(t.TempDir(), "data.pdf"), checkFlags{}, "FILE003"},
		{"bad format flag", writeDataset(t), checkFlags{format: "pdf"}, "CFG001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCheck(context.Background(), &bytes.Buffer{}, tt.path, tt.flags)
			if err == nil {
				t.Fatal("runCheck() expected error")
			}
			if got := core.MapError(err).Code; got != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", err, got, tt.wantCode)
			}
		})
	}
}

func TestCodesCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"codes"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, code := range []string{"E01", "E04", "E07"} {
		if !strings.Contains(out.String(), code) {
			t.Errorf("codes output missing %s", code)
		}
	}
}
