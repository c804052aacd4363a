package config

import (
	"fmt"
	"strings"
)

// normalize trims and lowercases enumerated fields and backfills empty ones
// with defaults so validation and later parsing see canonical spellings.
func (c *Config) normalize() {
	c.Scan.Tokenizer = canonical(c.Scan.Tokenizer, defaultTokenizer)
	if c.Scan.BufferKiB == 0 {
		c.Scan.BufferKiB = defaultBufferKiB
	}
	c.Report.Order = canonical(c.Report.Order, defaultReportOrder)
	c.Report.Format = canonical(c.Report.Format, defaultReportFormat)
	c.Logging.Level = canonical(c.Logging.Level, defaultLogLevel)
	c.Logging.Format = canonical(c.Logging.Format, defaultLogFormat)
}

func canonical(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	switch c.Scan.Tokenizer {
	case "classic", "unicode":
	default:
		return fmt.Errorf("scan.tokenizer must be classic or unicode, got %q", c.Scan.Tokenizer)
	}
	if c.Scan.BufferKiB < 0 {
		return fmt.Errorf("scan.buffer_kib must not be negative, got %d", c.Scan.BufferKiB)
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Order {
	case "lexicographic", "frequency":
	default:
		return fmt.Errorf("report.order must be lexicographic or frequency, got %q", c.Report.Order)
	}
	switch c.Report.Format {
	case "plain", "table":
	default:
		return fmt.Errorf("report.format must be plain or table, got %q", c.Report.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
