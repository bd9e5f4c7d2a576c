package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	m "github.com/mouse-blink/dtm/internal/model"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "analyze.workers")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))

	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidOutputFormats returns the list of valid result formats
func ValidOutputFormats() []string {
	return []string{"json", "yaml", "table"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateProbe()...)
	errs = append(errs, c.validateAnalyze()...)
	errs = append(errs, c.validateTestCommands()...)
	errs = append(errs, c.validateRegistry()...)
	errs = append(errs, c.validateOutput()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (c *Config) validateProbe() []ValidationError {
	var errs []ValidationError

	if c.Probe.InstallTimeout < 0 {
		errs = append(errs, ValidationError{"probe.install_timeout", c.Probe.InstallTimeout, "must not be negative"})
	}

	if c.Probe.TestTimeout < 0 {
		errs = append(errs, ValidationError{"probe.test_timeout", c.Probe.TestTimeout, "must not be negative"})
	}

	return errs
}

func (c *Config) validateAnalyze() []ValidationError {
	if c.Analyze.Workers < 1 {
		return []ValidationError{{"analyze.workers", c.Analyze.Workers, "must be at least 1"}}
	}

	return nil
}

func (c *Config) validateTestCommands() []ValidationError {
	var errs []ValidationError

	for eco := range c.TestCommands {
		if _, err := m.ParseEcosystem(eco); err != nil {
			errs = append(errs, ValidationError{"test_commands." + eco, eco, "unknown ecosystem"})
		}
	}

	slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })

	return errs
}

func (c *Config) validateRegistry() []ValidationError {
	var errs []ValidationError

	for field, raw := range map[string]string{
		"registry.pypi_url":     c.Registry.PyPIURL,
		"registry.crates_url":   c.Registry.CratesURL,
		"registry.go_proxy_url": c.Registry.GoProxyURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{field, raw, "must be an http(s) URL"})
		}
	}

	slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })

	if strings.TrimSpace(c.Registry.NpmCommand) == "" {
		errs = append(errs, ValidationError{"registry.npm_command", c.Registry.NpmCommand, "must not be empty"})
	}

	if c.Registry.RateLimit < 0 {
		errs = append(errs, ValidationError{"registry.rate_limit", c.Registry.RateLimit, "must not be negative"})
	}

	if c.Registry.Timeout <= 0 {
		errs = append(errs, ValidationError{"registry.timeout", c.Registry.Timeout, "must be positive"})
	}

	return errs
}

func (c *Config) validateOutput() []ValidationError {
	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		return []ValidationError{{
			"output.format", c.Output.Format,
			"must be one of " + strings.Join(ValidOutputFormats(), ", "),
		}}
	}

	return nil
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			"logging.level", c.Logging.Level,
			"must be one of " + strings.Join(ValidLogLevels(), ", "),
		})
	}

	if !slices.Contains(ValidLogFormats(), c.Logging.Format) {
		errs = append(errs, ValidationError{
			"logging.format", c.Logging.Format,
			"must be one of " + strings.Join(ValidLogFormats(), ", "),
		})
	}

	return errs
}
