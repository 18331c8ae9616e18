package config

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/shapelint/pkg/lint"
)

// Setting describes one top-level configuration key and the sources that
// may set it. Nested keys under lint are file-only.
type Setting struct {
	Key         string // key in shapelint.yaml
	Flag        string // flag overriding the key, "" when none
	Default     string
	Description string
}

// Env returns the environment variable that sets the key.
func (s Setting) Env() string {
	return envPrefix + strings.ToUpper(s.Key)
}

var settings = []Setting{
	{Key: "include", Default: DefaultInclude, Description: "Glob patterns of syntax-tree files to lint"},
	{Key: "exclude", Flag: "exclude", Default: DefaultExclude, Description: "Glob patterns of inputs to skip"},
	{Key: "output", Flag: "output", Default: DefaultOutput, Description: "Output format: auto, text, markdown or json"},
	{Key: "jobs", Flag: "jobs", Default: "0", Description: "Files analyzed in parallel (0 = one per CPU)"},
	{Key: "docs_url", Flag: "docs-url", Default: lint.DefaultDocsBaseURL, Description: "Base URL for rule documentation links"},
	{Key: "verbose", Flag: "verbose", Default: "false", Description: "Enable debug logging"},
}

// Settings returns the top-level configuration keys.
func Settings() []Setting {
	return slices.Clone(settings)
}

// flagKey returns the configuration key a flag overrides. Command-specific
// flags such as --format are not configuration.
func flagKey(name string) (string, bool) {
	for _, s := range settings {
		if s.Flag != "" && s.Flag == name {
			return s.Key, true
		}
	}
	return "", false
}

// Sources lists the configuration layers from lowest to highest precedence.
func Sources() []string {
	return []string{
		"built-in defaults",
		strings.Join(ConfigFileNames, " or ") + ", searched upward from the working directory",
		envPrefix + "* environment variables",
		"explicitly set command-line flags",
	}
}
