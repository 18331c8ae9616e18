package lint

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/leapstack-labs/shapelint/pkg/estree"
)

// Analyzer runs registered rules against files.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, opts ...AnalyzerOption) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		config: config,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeFile runs every enabled rule against file and returns the
// diagnostics ordered by position, then rule ID.
func (a *Analyzer) AnalyzeFile(file *File) []Diagnostic {
	var diagnostics []Diagnostic
	a.Run(file, ReporterFunc(func(d Diagnostic) {
		diagnostics = append(diagnostics, d)
	}))
	sort.SliceStable(diagnostics, func(i, j int) bool {
		pi, pj := diagnostics[i].Pos.Offset, diagnostics[j].Pos.Offset
		if pi != pj {
			return pi < pj
		}
		return diagnostics[i].RuleID < diagnostics[j].RuleID
	})
	return diagnostics
}

// Run analyzes file, streaming diagnostics to sink in the order rules report
// them.
func (a *Analyzer) Run(file *File, sink Reporter) {
	if file == nil || file.Program == nil {
		return
	}

	d := newDispatcher()
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID()) {
			continue
		}

		ctx := &Context{
			File:     file,
			RuleID:   rule.ID(),
			rule:     rule,
			options:  a.config.GetRuleOptions(rule.ID()),
			severity: a.config.GetSeverity(rule.ID(), rule.DefaultSeverity()),
			sink:     sink,
			logger:   a.logger.With(slog.String("rule", rule.ID()), slog.String("file", file.Path)),
		}
		visitors := rule.Create(ctx)
		ctx.logger.Debug("rule created", slog.Int("visitors", len(visitors)))
		d.add(visitors)
	}

	if d.empty() {
		return
	}
	estree.Traverse(file.Program, d)
}

// dispatcher fans traversal events out to rule callbacks.
type dispatcher struct {
	enter map[string][]func(*estree.Node)
	exit  map[string][]func(*estree.Node)
}

func newDispatcher() *dispatcher {
	return &dispatcher{
		enter: make(map[string][]func(*estree.Node)),
		exit:  make(map[string][]func(*estree.Node)),
	}
}

func (d *dispatcher) add(v Visitors) {
	for key, fn := range v {
		if fn == nil {
			continue
		}
		if kind, ok := strings.CutSuffix(key, ExitSuffix); ok {
			d.exit[kind] = append(d.exit[kind], fn)
			continue
		}
		d.enter[key] = append(d.enter[key], fn)
	}
}

func (d *dispatcher) empty() bool {
	return len(d.enter) == 0 && len(d.exit) == 0
}

func (d *dispatcher) Enter(n *estree.Node) bool {
	for _, fn := range d.enter[n.Type] {
		fn(n)
	}
	return true
}

func (d *dispatcher) Exit(n *estree.Node) {
	for _, fn := range d.exit[n.Type] {
		fn(n)
	}
}
