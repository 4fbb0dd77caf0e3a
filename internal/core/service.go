package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/JonMunkholm/culturize/internal/config"
	"github.com/JonMunkholm/culturize/internal/logging"
	"github.com/google/uuid"
)

var (
	// ErrInvalidData is returned with the result when rows are invalid and
	// IgnoreOnInvalidData is off.
	ErrInvalidData = errors.New("dataset contains invalid rows")

	// ErrNoHeader is returned by sources for input without a header row.
	ErrNoHeader = errors.New("empty file: no header row")

	// ErrMissingColumns is returned when the header lacks a required column.
	ErrMissingColumns = errors.New("missing required column")
)

// Summary counts the outcome of a run.
type Summary struct {
	Total       int `json:"total"`       // Rows created
	Clean       int `json:"clean"`       // Rows without any error
	Flagged     int `json:"flagged"`     // Rows with at least one error
	Duplicates  int `json:"duplicates"`  // Rows marked E07
	Skipped     int `json:"skipped"`     // Input rows missing a required column
	Probed      int `json:"probed"`      // Rows whose URL was probed
	Unreachable int `json:"unreachable"` // Rows marked E06
	Convertible int `json:"convertible"` // Valid and enabled rows
}

// RunResult is the outcome of checking one dataset.
type RunResult struct {
	RunID     string        `json:"runId"`
	Source    string        `json:"source"`
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
	Rows      []*Row        `json:"-"`
	Summary   Summary       `json:"summary"`
}

// Entries renders every row for the report.
func (r *RunResult) Entries() []ReportEntry {
	entries := make([]ReportEntry, len(r.Rows))
	for i, row := range r.Rows {
		entries[i] = Render(row)
	}
	return entries
}

// Convertible returns the valid, enabled rows a publisher would turn into redirects.
// Duplicates are left out so each (PID, document type) pair appears once.
func (r *RunResult) Convertible() []*Row {
	var out []*Row
	for _, row := range r.Rows {
		if row.ValidAndEnabled() && !row.IsDuplicate() {
			out = append(out, row)
		}
	}
	return out
}

// Service runs checks over whole datasets.
type Service struct {
	opts          Options
	ignoreInvalid bool
	probe         bool
	checker       *URLChecker
}

// NewService creates a Service from configuration. If checker is nil one is
// built from the probe settings.
func NewService(cfg *config.Config, checker *URLChecker) *Service {
	if checker == nil {
		checker = NewURLChecker(
			WithHTTPClient(&http.Client{Transport: NewLoggingTransport(nil)}),
			WithTimeout(cfg.Probe.Timeout),
			WithMaxConcurrent(cfg.Probe.MaxConcurrent),
			WithUserAgent(cfg.Probe.UserAgent),
		)
	}
	return &Service{
		opts:          OptionsFromConfig(cfg.CSV),
		ignoreInvalid: cfg.CSV.IgnoreOnInvalidData,
		probe:         cfg.Probe.Enabled,
		checker:       checker,
	}
}

// SetProbe turns URL probing on or off.
func (s *Service) SetProbe(enabled bool) {
	s.probe = enabled
}

// requiredColumns lists the configured headers a dataset must carry.
func (s *Service) requiredColumns() []string {
	cols := []string{s.opts.PIDColumn, s.opts.URLColumn, s.opts.EnabledColumn}
	if !s.opts.AllowNoDocType {
		cols = append(cols, s.opts.DocTypeColumn)
	}
	return cols
}

// ValidateHeader checks that header carries every required column.
func (s *Service) ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range s.requiredColumns() {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// Check reads every row from src, checks it, marks duplicates and probes URLs.
//
// The result is returned even when err is ErrInvalidData, so callers can
// still report the flagged rows. A cancelled ctx stops probing; rows not yet
// probed stay unchecked and ctx's error is returned with the result.
func (s *Service) Check(ctx context.Context, name string, src RowSource) (*RunResult, error) {
	result := &RunResult{
		RunID:     uuid.New().String(),
		Source:    name,
		StartedAt: time.Now(),
	}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithFields(ctx, "source", name)

	if err := s.ValidateHeader(src.Header()); err != nil {
		return nil, err
	}

	factory := NewRowFactory(s.opts)
	for {
		raw, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		row, ok := factory.Create(raw)
		if !ok {
			result.Summary.Skipped++
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	logger.Info("rows loaded", "rows", len(result.Rows), "skipped", result.Summary.Skipped)

	dups := MarkDuplicates(result.Rows)
	if dups > 0 {
		logger.Debug("duplicates marked", "count", dups)
	}

	var probeErr error
	if s.probe {
		logger.Info("probing urls", "max_concurrent", s.checker.Limiter().MaxConcurrent())
		_, probeErr = s.checker.CheckAll(ctx, result.Rows)
		if probeErr != nil {
			logger.Warn("probing stopped early", "error", probeErr)
		}
	}

	result.Summary = summarize(result.Rows, result.Summary.Skipped)
	result.Duration = time.Since(result.StartedAt)

	logger.Info("check complete",
		"rows", result.Summary.Total,
		"flagged", result.Summary.Flagged,
		"duplicates", result.Summary.Duplicates,
		"unreachable", result.Summary.Unreachable,
		"duration_ms", result.Duration.Milliseconds(),
	)

	if probeErr != nil {
		return result, fmt.Errorf("probe urls: %w", probeErr)
	}

	if !s.ignoreInvalid {
		for _, row := range result.Rows {
			if row.Blocking() {
				return result, ErrInvalidData
			}
		}
	}

	return result, nil
}

func summarize(rows []*Row, skipped int) Summary {
	sum := Summary{Total: len(rows), Skipped: skipped}
	for _, row := range rows {
		if row.HasErrors() {
			sum.Flagged++
		} else {
			sum.Clean++
		}
		if row.IsDuplicate() {
			sum.Duplicates++
		}
		if row.URLChecked() {
			sum.Probed++
		}
		if row.HasError(CodeURLUnreachable) {
			sum.Unreachable++
		}
		if row.ValidAndEnabled() && !row.IsDuplicate() {
			sum.Convertible++
		}
	}
	return sum
}
