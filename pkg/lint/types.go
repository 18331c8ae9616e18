package lint

import (
	"github.com/leapstack-labs/shapelint/pkg/estree"
	"github.com/leapstack-labs/shapelint/pkg/scope"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

// =============================================================================
// Input
// =============================================================================

// File is one unit of analysis handed to the rules.
type File struct {
	Path    string
	Source  string       // raw source text; may be empty when unavailable
	Program *estree.Node // root Program node
	// Bindings is the optional host binding table. Rules fall back to
	// scanning Program when it is nil.
	Bindings scope.Table
}

// =============================================================================
// Rule Definitions
// =============================================================================

// Stability classifies how settled a rule's behavior is.
type Stability string

// Stability levels.
const (
	StabilityStable       Stability = "stable"
	StabilityExperimental Stability = "experimental"
)

// ExitSuffix marks a Visitors key that fires after a node's children.
const ExitSuffix = ":exit"

// Visitors maps a node kind (or kind + ExitSuffix) to a callback.
type Visitors map[string]func(node *estree.Node)

// CreateFunc is a rule entry point. It is called once per file and returns
// the callbacks to run during traversal. Per-file state belongs in the
// closure; nothing may be retained across calls.
type CreateFunc func(ctx *Context) Visitors

// RuleDef is a data-driven rule definition.
type RuleDef struct {
	ID          string     // Unique identifier, e.g., "guard-clause" or "style/no-var"
	Name        string     // Human-readable name, e.g., "control.guard_clause"
	Group       string     // Category, e.g., "control", "exports", "style"
	Description string     // Human-readable description
	Severity    Severity   // Default severity
	Stability   Stability  // Defaults to StabilityStable
	Create      CreateFunc // The entry point
	ConfigKeys  []string   // Configuration keys this rule accepts (for rule-specific options)

	// Messages maps each message ID the rule reports to its fixed text.
	Messages map[string]string

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID    string
	MessageID string
	Severity  Severity
	Message   string
	Path      string
	Pos       token.Position
	EndPos    token.Position // Optional: end of the problematic range

	// Remediation metadata
	DocumentationURL string // URL to rule documentation
	ImpactScore      int    // 0-100
	AutoFixable      bool   // always false; no rule rewrites code
}

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d Diagnostic)

// Report implements Reporter.
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// =============================================================================
// Rule Interface
// =============================================================================

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "guard-clause"
	ID() string

	// Name returns the human-readable name, e.g., "control.guard_clause"
	Name() string

	// Group returns the category, e.g., "control", "exports"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() Severity

	// Stability returns the stability classification
	Stability() Stability

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Messages maps message IDs to their fixed text
	Messages() map[string]string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)

	// Create is the per-file entry point.
	Create(ctx *Context) Visitors
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Group            string            `json:"group"`
	Description      string            `json:"description"`
	DefaultSeverity  Severity          `json:"default_severity"`
	Stability        Stability         `json:"stability"`
	ConfigKeys       []string          `json:"config_keys,omitempty"`
	Messages         map[string]string `json:"messages,omitempty"`
	DocumentationURL string            `json:"documentation_url"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) RuleInfo {
	return RuleInfo{
		ID:               r.ID(),
		Name:             r.Name(),
		Group:            r.Group(),
		Description:      r.Description(),
		DefaultSeverity:  r.DefaultSeverity(),
		Stability:        r.Stability(),
		ConfigKeys:       r.ConfigKeys(),
		Messages:         r.Messages(),
		DocumentationURL: BuildDocURL(r.ID()),
		Rationale:        r.Rationale(),
		BadExample:       r.BadExample(),
		GoodExample:      r.GoodExample(),
		Fix:              r.Fix(),
	}
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                  { return w.def.ID }
func (w *wrappedRuleDef) Name() string                { return w.def.Name }
func (w *wrappedRuleDef) Group() string               { return w.def.Group }
func (w *wrappedRuleDef) Description() string         { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() Severity   { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string        { return w.def.ConfigKeys }
func (w *wrappedRuleDef) Messages() map[string]string { return w.def.Messages }

func (w *wrappedRuleDef) Stability() Stability {
	if w.def.Stability == "" {
		return StabilityStable
	}
	return w.def.Stability
}

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) Create(ctx *Context) Visitors {
	if w.def.Create == nil {
		return nil
	}
	return w.def.Create(ctx)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
