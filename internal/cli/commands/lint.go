package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/shapelint/internal/cli/config"
	"github.com/leapstack-labs/shapelint/internal/cli/output"
	"github.com/leapstack-labs/shapelint/internal/loader"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	_ "github.com/leapstack-labs/shapelint/pkg/lint/rules" // register rules
)

// errLintIssues makes the process exit non-zero when diagnostics remain.
var errLintIssues = errors.New("lint issues found")

// IsLintIssues reports whether err only signals that diagnostics were found.
func IsLintIssues(err error) bool {
	return errors.Is(err, errLintIssues)
}

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Jobs     int      // Parallel workers, 0 for one per CPU
	Watch    bool     // Re-run when inputs change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Run convention rules on ESTree syntax trees",
		Long: `Analyze syntax trees produced by a JavaScript/TypeScript frontend.

Each input is either a bare ESTree Program (foo.ts.estree.json, with foo.ts
next to it for source text) or an envelope document carrying path, source,
program and an optional binding table. Directories are searched with the
include and exclude patterns from shapelint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint everything under the current directory
  shapelint lint

  # Lint specific paths
  shapelint lint ./build/ast src/app.ts.estree.json

  # Output as JSON
  shapelint lint --format json

  # Disable specific rules
  shapelint lint --disable guard-clause,style/no-var

  # Run only the export rules
  shapelint lint --rule export-ordering --rule empty-wrapper

  # Re-run on every change
  shapelint lint --watch`,
		// Findings are the output; a usage dump would corrupt it.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Number of files analyzed in parallel (0 = one per CPU)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch inputs and re-run on change")

	_ = cmd.RegisterFlagCompletionFunc("rule", completeRuleIDs)
	_ = cmd.RegisterFlagCompletionFunc("disable", completeRuleIDs)

	return cmd
}

func completeRuleIDs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, r := range lint.GetAll() {
		ids = append(ids, r.ID())
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cc := NewCommandContext(cmd, opts.Format)
	cfg := cc.Cfg

	if cfg.DocsURL != "" {
		lint.SetDocsBaseURL(cfg.DocsURL)
		defer lint.ResetDocsBaseURL()
	}

	lintCfg := buildLintConfig(cfg, opts)
	if err := lintCfg.Validate(); err != nil {
		return err
	}
	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q: want error, warning, info or hint", opts.Severity)
	}

	jobs := opts.Jobs
	if !cmd.Flags().Changed("jobs") {
		jobs = cfg.Jobs
	}

	run := &lintRun{
		analyzer:  lint.NewAnalyzer(lintCfg, lint.WithLogger(cc.Logger)),
		discover:  loader.Options{Include: cfg.Include, Exclude: cfg.Exclude},
		paths:     opts.Paths,
		threshold: threshold,
		jobs:      jobs,
		logger:    cc.Logger,
		renderer:  cc.Renderer,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Watch {
		return watchLint(ctx, run)
	}
	return run.once(ctx)
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		projectLint := cfg.Lint
		for _, id := range projectLint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range projectLint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range projectLint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}
	if len(opts.Rules) > 0 {
		ids := make([]string, 0, len(opts.Rules))
		for _, id := range opts.Rules {
			ids = append(ids, strings.TrimSpace(id))
		}
		lintCfg.Only(ids...)
	}

	return lintCfg
}

// lintRun is one configured lint invocation; watch mode repeats it.
type lintRun struct {
	analyzer  *lint.Analyzer
	discover  loader.Options
	paths     []string
	threshold lint.Severity
	jobs      int
	logger    *slog.Logger
	renderer  *output.Renderer
}

// lintFileResult holds lint results for a single file.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

func (l *lintRun) once(ctx context.Context) error {
	files, err := loader.Discover(l.discover, l.paths...)
	if err != nil {
		return err
	}
	l.logger.Debug("discovered inputs", slog.Int("files", len(files)))

	results, err := analyzeFiles(ctx, l.analyzer, files, l.jobs, l.logger)
	if err != nil {
		return err
	}

	results = filterBySeverity(results, l.threshold)
	if renderLintResults(l.renderer, results, len(files)) {
		return errLintIssues
	}
	return nil
}

// analyzeFiles loads and analyzes paths with at most jobs files in flight.
// Results keep the order of paths.
func analyzeFiles(ctx context.Context, analyzer *lint.Analyzer, paths []string, jobs int, logger *slog.Logger) ([]lintFileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]lintFileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := loader.Load(path)
			if err != nil {
				return err
			}
			diags := analyzer.AnalyzeFile(file)
			logger.Debug("analyzed file", slog.String("file", file.Path), slog.Int("diagnostics", len(diags)))
			results[i] = lintFileResult{Path: file.Path, Diagnostics: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// filterBySeverity drops diagnostics below threshold and files left empty.
func filterBySeverity(results []lintFileResult, threshold lint.Severity) []lintFileResult {
	var filtered []lintFileResult
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity.AtLeast(threshold) {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lintFileResult{
				Path:        r.Path,
				Diagnostics: diags,
			})
		}
	}
	return filtered
}

func summarize(results []lintFileResult, analyzed int) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed:   analyzed,
		FilesWithIssues: len(results),
	}
	for _, res := range results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

// renderLintResults prints results and reports whether any issue remained.
func renderLintResults(r *output.Renderer, results []lintFileResult, analyzed int) bool {
	summary := summarize(results, analyzed)

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
			Files:   []output.LintFileResult{},
		}
		for _, res := range results {
			fileResult := output.LintFileResult{Path: res.Path}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:           d.RuleID,
					MessageID:        d.MessageID,
					Severity:         d.Severity.String(),
					Message:          d.Message,
					Line:             d.Pos.Line,
					Column:           d.Pos.Column,
					EndLine:          d.EndPos.Line,
					EndColumn:        d.EndPos.Column,
					DocumentationURL: d.DocumentationURL,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return len(results) > 0
	}

	if len(results) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", analyzed))
		return false
	}

	// Text/Markdown output
	for _, res := range results {
		r.Println(r.Styles().Path.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
			if d.Pos.Line == 0 {
				loc = fmt.Sprintf("@%d", d.Pos.Offset)
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n", strings.Join(summaryParts, ", "), summary.FilesWithIssues, analyzed)

	return true
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
