// Package config provides configuration management for the shapelint CLI.
//
// Configuration is layered with koanf: built-in defaults, then shapelint.yaml,
// then SHAPELINT_* environment variables, then explicitly set flags.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/shapelint/pkg/lint"
)

// RuleOptions holds the raw option map for one rule.
type RuleOptions = map[string]any

// LintConfig holds rule selection and per-rule settings.
type LintConfig struct {
	Disabled []string               `koanf:"disabled" yaml:"disabled"`
	Severity map[string]string      `koanf:"severity" yaml:"severity"`
	Rules    map[string]RuleOptions `koanf:"rules" yaml:"rules"`
}

// Config holds all CLI configuration options.
type Config struct {
	Include      []string    `koanf:"include" yaml:"include"`
	Exclude      []string    `koanf:"exclude" yaml:"exclude"`
	Verbose      bool        `koanf:"verbose" yaml:"verbose"`
	OutputFormat string      `koanf:"output" yaml:"output"`
	Jobs         int         `koanf:"jobs" yaml:"jobs"`
	DocsURL      string      `koanf:"docs_url" yaml:"docs_url,omitempty"`
	Lint         *LintConfig `koanf:"lint" yaml:"lint"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Default configuration values.
const (
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs    = 0      // 0 means one worker per CPU
	DefaultInclude = "**/*.estree.json"
	DefaultExclude = "**/node_modules/**"
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"shapelint.yaml", "shapelint.yml"}

// Default returns the configuration used when no file, env or flag sets a
// value. It is also what `shapelint init` writes.
func Default() *Config {
	return &Config{
		Include:      []string{DefaultInclude},
		Exclude:      []string{DefaultExclude},
		OutputFormat: DefaultOutput,
		Jobs:         DefaultJobs,
		Lint: &LintConfig{
			Disabled: []string{},
			Severity: map[string]string{},
			Rules: map[string]RuleOptions{
				"export-ordering": {"allowReExport": false},
			},
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("invalid output format %q: want auto, text, markdown or json", c.OutputFormat)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.Lint == nil {
		return nil
	}
	for id, sev := range c.Lint.Severity {
		if _, ok := lint.ParseSeverity(sev); !ok {
			return fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
		}
	}
	for _, id := range c.Lint.Disabled {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("lint.disabled: empty rule ID")
		}
	}
	return nil
}
