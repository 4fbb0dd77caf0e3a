// Package config provides centralized configuration management for the checker.
// It applies struct-tag defaults, overlays an optional YAML file and then the
// environment, and validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables or a YAML file.
type Config struct {
	CSV     CSVConfig     `yaml:"csv"`
	Probe   ProbeConfig   `yaml:"probe"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// CSVConfig holds the column names and row policies of the input dataset.
type CSVConfig struct {
	// PIDColumn is the header of the persistent identifier column (default: PID)
	PIDColumn string `env:"CSV_COL_PID" default:"PID" yaml:"pid_column"`

	// URLColumn is the header of the target URL column (default: URL)
	URLColumn string `env:"CSV_COL_URL" default:"URL" yaml:"url_column"`

	// EnabledColumn is the header of the enabled flag column (default: enabled)
	EnabledColumn string `env:"CSV_COL_ENABLED" default:"enabled" yaml:"enabled_column"`

	// DocTypeColumn is the header of the document type column (default: document type)
	DocTypeColumn string `env:"CSV_COL_DOCTYPE" default:"document type" yaml:"doctype_column"`

	// IgnoreOnInvalidData reports invalid rows instead of failing the run (default: true)
	IgnoreOnInvalidData bool `env:"CSV_IGNORE_ON_INVALID_DATA" default:"true" yaml:"ignore_on_invalid_data"`

	// AllowNoDocType accepts rows with an empty or missing document type (default: true)
	AllowNoDocType bool `env:"CSV_ALLOW_NO_DOCTYPE" default:"true" yaml:"allow_no_doctype"`

	// Sheet is the worksheet read from .xlsx input; empty means the first sheet
	Sheet string `env:"CSV_SHEET" yaml:"sheet"`
}

// ProbeConfig holds URL liveness probe settings.
type ProbeConfig struct {
	// Enabled controls whether URLs are probed at all (default: true)
	Enabled bool `env:"PROBE_ENABLED" default:"true" yaml:"enabled"`

	// Timeout bounds a single HEAD request (default: 2s)
	Timeout time.Duration `env:"PROBE_TIMEOUT" default:"2s" yaml:"timeout"`

	// MaxConcurrent is the maximum number of probes in flight (default: 8)
	MaxConcurrent int `env:"PROBE_MAX_CONCURRENT" default:"8" yaml:"max_concurrent"`

	// UserAgent is sent with every probe request
	UserAgent string `env:"PROBE_USER_AGENT" default:"culturize-check/1.0" yaml:"user_agent"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	// Format is the report format: html or json (default: html)
	Format string `env:"REPORT_FORMAT" default:"html" yaml:"format"`

	// Title is shown at the top of the HTML report
	Title string `env:"REPORT_TITLE" default:"Culturize report" yaml:"title"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info" yaml:"level"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text" yaml:"format"`
}
