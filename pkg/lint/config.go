package lint

import (
	"errors"
	"fmt"
	"sort"
)

// Configuration errors.
var (
	// ErrUnknownRule is returned when configuration names a rule that is not
	// registered.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrUnknownOption is returned when rule options contain a key the rule
	// does not accept.
	ErrUnknownOption = errors.New("unknown rule option")
)

// Config controls which rules are enabled, their severity and their options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// OnlyRules, when non-empty, restricts analysis to these rule IDs
	OnlyRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds rule-specific options keyed by rule ID
	RuleOptions Options
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		OnlyRules:         make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(Options),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if len(c.OnlyRules) > 0 && !c.OnlyRules[ruleID] {
		return true
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions.Rule(ruleID)
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Only restricts analysis to the given rule IDs.
func (c *Config) Only(ruleIDs ...string) *Config {
	for _, id := range ruleIDs {
		c.OnlyRules[id] = true
	}
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets the options for a rule.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// Validate reports rule IDs referenced by the configuration that are not
// registered (ErrUnknownRule), then option keys a rule does not declare in
// its ConfigKeys (ErrUnknownOption).
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	unknown := make(map[string]bool)
	check := func(id string) {
		if _, ok := GetByID(id); !ok {
			unknown[id] = true
		}
	}
	for id := range c.DisabledRules {
		check(id)
	}
	for id := range c.OnlyRules {
		check(id)
	}
	for id := range c.SeverityOverrides {
		check(id)
	}
	for id := range c.RuleOptions {
		check(id)
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownRule, sortedKeys(unknown))
	}

	for id, opts := range c.RuleOptions {
		rule, _ := GetByID(id)
		accepted := make(map[string]bool, len(rule.ConfigKeys()))
		for _, k := range rule.ConfigKeys() {
			accepted[k] = true
		}
		bad := make(map[string]bool)
		for k := range opts {
			if !accepted[k] {
				bad[k] = true
			}
		}
		if len(bad) > 0 {
			return fmt.Errorf("%w for %s: %v", ErrUnknownOption, id, sortedKeys(bad))
		}
	}
	return nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
