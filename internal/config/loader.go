package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// FileEnv names the environment variable that points at an optional YAML config file.
const FileEnv = "CULTURIZE_CONFIG"

// Load builds the configuration from struct defaults, the YAML file at path
// (or $CULTURIZE_CONFIG when path is empty) and environment variables, in that
// order of precedence, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), defaultLookup); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(FileEnv)
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), envLookup); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadFile decodes a YAML file over cfg. Keys absent from the file keep
// their current values.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// lookupFunc returns the raw value for a field and whether one was found.
type lookupFunc func(field reflect.StructField) (string, string, bool)

// defaultLookup reads the `default` tag.
func defaultLookup(field reflect.StructField) (string, string, bool) {
	v, ok := field.Tag.Lookup("default")
	return field.Tag.Get("env"), v, ok
}

// envLookup reads the variable named by the `env` tag. Empty variables are
// treated as unset.
func envLookup(field reflect.StructField) (string, string, bool) {
	name := field.Tag.Get("env")
	if name == "" {
		return "", "", false
	}
	v := os.Getenv(name)
	return name, v, v != ""
}

// loadStruct recursively populates struct fields from lookup.
func loadStruct(v reflect.Value, lookup lookupFunc) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal, lookup); err != nil {
				return err
			}
			continue
		}

		name, value, ok := lookup(field)
		if !ok {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", name, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Column names
	cols := map[string]string{
		"CSV_COL_PID":     c.CSV.PIDColumn,
		"CSV_COL_URL":     c.CSV.URLColumn,
		"CSV_COL_ENABLED": c.CSV.EnabledColumn,
		"CSV_COL_DOCTYPE": c.CSV.DocTypeColumn,
	}
	seen := make(map[string]string, len(cols))
	for _, env := range []string{"CSV_COL_PID", "CSV_COL_URL", "CSV_COL_ENABLED", "CSV_COL_DOCTYPE"} {
		name := cols[env]
		if strings.TrimSpace(name) == "" {
			errs = append(errs, env+" must not be empty")
			continue
		}
		if other, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("%s (%q) must differ from %s", env, name, other))
			continue
		}
		seen[name] = env
	}

	// Probe validation
	if c.Probe.Timeout <= 0 {
		errs = append(errs, "PROBE_TIMEOUT must be positive")
	}
	if c.Probe.MaxConcurrent <= 0 {
		errs = append(errs, "PROBE_MAX_CONCURRENT must be positive")
	}

	// Report validation
	validReportFormats := map[string]bool{"html": true, "json": true}
	if !validReportFormats[strings.ToLower(c.Report.Format)] {
		errs = append(errs, fmt.Sprintf("REPORT_FORMAT (%q) must be one of: html, json", c.Report.Format))
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "CSV: {PID: %q, URL: %q, Enabled: %q, DocType: %q, IgnoreInvalid: %v, AllowNoDocType: %v}, ",
		c.CSV.PIDColumn, c.CSV.URLColumn, c.CSV.EnabledColumn, c.CSV.DocTypeColumn,
		c.CSV.IgnoreOnInvalidData, c.CSV.AllowNoDocType)
	fmt.Fprintf(&b, "Probe: {Enabled: %v, Timeout: %s, MaxConcurrent: %d}, ",
		c.Probe.Enabled, c.Probe.Timeout, c.Probe.MaxConcurrent)
	fmt.Fprintf(&b, "Report: {Format: %q}, ", c.Report.Format)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")
	return b.String()
}
