package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/internal/cli/config"
	"github.com/leapstack-labs/shapelint/internal/cli/output"
	"github.com/leapstack-labs/shapelint/internal/cli/testutil"
	"github.com/leapstack-labs/shapelint/internal/loader"
	"github.com/leapstack-labs/shapelint/pkg/lint"
	"github.com/leapstack-labs/shapelint/pkg/token"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)

	for _, flag := range []string{"format", "disable", "severity", "rule", "jobs", "watch"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.Equal(t, "warning", cmd.Flags().Lookup("severity").DefValue)
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("nil project config", func(t *testing.T) {
		cfg := buildLintConfig(nil, &LintOptions{})
		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("guard-clause"))
	})

	t.Run("project config applies", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"guard-clause"},
				Severity: map[string]string{"empty-wrapper": "error"},
				Rules: map[string]config.RuleOptions{
					"export-ordering": {"allowReExport": true},
				},
			},
		}
		cfg := buildLintConfig(projectCfg, &LintOptions{})

		assert.True(t, cfg.IsDisabled("guard-clause"))
		assert.Equal(t, lint.SeverityError, cfg.GetSeverity("empty-wrapper", lint.SeverityWarning))
		assert.Equal(t, true, cfg.GetRuleOptions("export-ordering")["allowReExport"])
	})

	t.Run("CLI overrides project config", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"guard-clause"},
			},
		}
		opts := &LintOptions{
			Disable: []string{" non-empty-catch"},
		}
		cfg := buildLintConfig(projectCfg, opts)

		assert.True(t, cfg.IsDisabled("guard-clause"))
		assert.True(t, cfg.IsDisabled("non-empty-catch"))
		assert.False(t, cfg.IsDisabled("export-ordering"))
	})

	t.Run("rule flag restricts to listed rules", func(t *testing.T) {
		cfg := buildLintConfig(config.Default(), &LintOptions{
			Rules: []string{"export-ordering", "style/no-var"},
		})

		assert.False(t, cfg.IsDisabled("export-ordering"))
		assert.False(t, cfg.IsDisabled("style/no-var"))
		assert.True(t, cfg.IsDisabled("guard-clause"))
		assert.True(t, cfg.IsDisabled("empty-wrapper"))
	})
}

func TestFilterBySeverity(t *testing.T) {
	results := []lintFileResult{
		{
			Path: "a.js",
			Diagnostics: []lint.Diagnostic{
				{RuleID: "non-empty-catch", Severity: lint.SeverityError, Message: "error"},
				{RuleID: "guard-clause", Severity: lint.SeverityWarning, Message: "warning"},
				{RuleID: "style/no-var", Severity: lint.SeverityHint, Message: "hint"},
			},
		},
	}

	tests := []struct {
		name      string
		threshold lint.Severity
		wantDiags int
	}{
		{name: "error threshold", threshold: lint.SeverityError, wantDiags: 1},
		{name: "warning threshold", threshold: lint.SeverityWarning, wantDiags: 2},
		{name: "hint threshold", threshold: lint.SeverityHint, wantDiags: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := filterBySeverity(results, tt.threshold)
			require.Len(t, filtered, 1)
			assert.Len(t, filtered[0].Diagnostics, tt.wantDiags)
		})
	}

	t.Run("drops files left empty", func(t *testing.T) {
		hintsOnly := []lintFileResult{
			{Path: "a.js", Diagnostics: []lint.Diagnostic{{RuleID: "style/no-var", Severity: lint.SeverityHint}}},
		}
		assert.Empty(t, filterBySeverity(hintsOnly, lint.SeverityError))
	})
}

func sampleResults() []lintFileResult {
	return []lintFileResult{
		{
			Path: "src/a.js",
			Diagnostics: []lint.Diagnostic{
				{
					RuleID:    "non-empty-catch",
					MessageID: "emptyCatch",
					Severity:  lint.SeverityError,
					Message:   "Catch blocks must handle the error",
					Pos:       token.Position{Line: 2, Column: 1, Offset: 13},
					EndPos:    token.Position{Line: 2, Column: 13, Offset: 25},
				},
				{
					RuleID:   "guard-clause",
					Severity: lint.SeverityWarning,
					Message:  "Use a guard clause",
					Pos:      token.Position{Offset: 40},
				},
			},
		},
	}
}

func TestRenderLintResults(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		tr := testutil.NewTestRendererText()
		issues := renderLintResults(tr.Renderer, nil, 4)

		assert.False(t, issues)
		assert.Equal(t, "✓ No lint issues found in 4 files\n", tr.Output())
	})

	t.Run("text", func(t *testing.T) {
		tr := testutil.NewTestRendererText()
		issues := renderLintResults(tr.Renderer, sampleResults(), 3)

		assert.True(t, issues)
		out := tr.Output()
		assert.Contains(t, out, "src/a.js\n")
		assert.Contains(t, out, "2:1")
		assert.Contains(t, out, "@40")
		assert.Contains(t, out, "non-empty-catch")
		assert.Contains(t, out, "Summary: 2 issues, 1 errors, 1 warnings in 1 of 3 files\n")
		testutil.AssertNoANSI(t, out)
	})

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRendererMarkdown()
		renderLintResults(tr.Renderer, sampleResults(), 1)

		testutil.AssertNoANSI(t, tr.Output())
		testutil.AssertValidMarkdown(t, tr.Output())
	})

	t.Run("json", func(t *testing.T) {
		tr := testutil.NewTestRendererJSON()
		issues := renderLintResults(tr.Renderer, sampleResults(), 3)
		assert.True(t, issues)

		var got output.LintOutput
		require.NoError(t, jsoniter.Unmarshal(tr.Out.Bytes(), &got))
		assert.Equal(t, 3, got.Summary.FilesAnalyzed)
		assert.Equal(t, 1, got.Summary.FilesWithIssues)
		assert.Equal(t, 2, got.Summary.TotalIssues)
		assert.Equal(t, 1, got.Summary.Errors)
		assert.Equal(t, 1, got.Summary.Warnings)
		require.Len(t, got.Files, 1)
		require.Len(t, got.Files[0].Diagnostics, 2)

		d := got.Files[0].Diagnostics[0]
		assert.Equal(t, "non-empty-catch", d.RuleID)
		assert.Equal(t, "emptyCatch", d.MessageID)
		assert.Equal(t, "error", d.Severity)
		assert.Equal(t, 2, d.Line)
		assert.Equal(t, 13, d.EndColumn)
	})

	t.Run("json without issues has empty files", func(t *testing.T) {
		tr := testutil.NewTestRendererJSON()
		renderLintResults(tr.Renderer, nil, 2)

		var got output.LintOutput
		require.NoError(t, jsoniter.Unmarshal(tr.Out.Bytes(), &got))
		assert.NotNil(t, got.Files)
		assert.Empty(t, got.Files)
	})
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		testutil.WriteEnvelope(t, dir, "a.js", testutil.VarSource, testutil.VarProgram),
		testutil.WriteEnvelope(t, dir, "b.js", testutil.CleanSource, testutil.CleanProgram),
		testutil.WriteEnvelope(t, dir, "c.js", testutil.EmptyCatchSource, testutil.EmptyCatchProgram),
	}
	analyzer := lint.NewAnalyzer(lint.NewConfig())

	for _, jobs := range []int{0, 1, 3} {
		results, err := analyzeFiles(context.Background(), analyzer, paths, jobs, config.GetLogger(context.Background()))
		require.NoError(t, err)
		require.Len(t, results, 3)

		// Results keep input order regardless of scheduling.
		assert.Equal(t, "a.js", results[0].Path)
		assert.Equal(t, "b.js", results[1].Path)
		assert.Equal(t, "c.js", results[2].Path)

		require.Len(t, results[0].Diagnostics, 1)
		assert.Equal(t, "style/no-var", results[0].Diagnostics[0].RuleID)
		assert.Empty(t, results[1].Diagnostics)
		require.Len(t, results[2].Diagnostics, 1)
		assert.Equal(t, "non-empty-catch", results[2].Diagnostics[0].RuleID)
		assert.Equal(t, 2, results[2].Diagnostics[0].Pos.Line)
	}
}

func TestAnalyzeFiles_LoadError(t *testing.T) {
	dir := t.TempDir()
	bad := testutil.WriteEnvelope(t, dir, "bad.js", "", `{"type":"Identifier","name":"x"}`)

	_, err := analyzeFiles(context.Background(), lint.NewAnalyzer(lint.NewConfig()), []string{bad}, 1, config.GetLogger(context.Background()))
	require.Error(t, err)
}

func executeLint(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewLintCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteEnvelope(t, dir, "src/a.js", testutil.VarSource, testutil.VarProgram)
	testutil.WriteEnvelope(t, dir, "src/b.js", testutil.CleanSource, testutil.CleanProgram)
	testutil.WriteEnvelope(t, dir, "src/c.js", testutil.EmptyCatchSource, testutil.EmptyCatchProgram)
	testutil.WriteEnvelope(t, dir, "node_modules/dep/d.js", testutil.VarSource, testutil.VarProgram)

	t.Run("issues found", func(t *testing.T) {
		out, err := executeLint(t, "--format", "text", dir)
		require.Error(t, err)
		assert.True(t, IsLintIssues(err))
		assert.Contains(t, out, "style/no-var")
		assert.Contains(t, out, "non-empty-catch")
		assert.NotContains(t, out, "node_modules")
		assert.Contains(t, out, "in 2 of 3 files")
		assert.NotContains(t, out, "Usage:")
	})

	t.Run("severity threshold", func(t *testing.T) {
		out, err := executeLint(t, "--format", "text", "--severity", "error", dir)
		require.Error(t, err)
		assert.Contains(t, out, "non-empty-catch")
		assert.NotContains(t, out, "style/no-var")
	})

	t.Run("disabled rules leave a clean run", func(t *testing.T) {
		out, err := executeLint(t, "--format", "text", "--disable", "style/no-var,non-empty-catch", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "No lint issues found in 3 files")
	})

	t.Run("single rule", func(t *testing.T) {
		out, err := executeLint(t, "--format", "json", "--rule", "style/no-var", filepath.Join(dir, "src"))
		require.Error(t, err)
		assert.True(t, IsLintIssues(err))

		var got output.LintOutput
		require.NoError(t, jsoniter.Unmarshal([]byte(out), &got))
		assert.Equal(t, 1, got.Summary.TotalIssues)
		require.Len(t, got.Files, 1)
		assert.Equal(t, "src/a.js", got.Files[0].Path)
	})

	t.Run("unknown severity", func(t *testing.T) {
		_, err := executeLint(t, "--severity", "fatal", dir)
		require.Error(t, err)
		assert.False(t, IsLintIssues(err))
		assert.Contains(t, err.Error(), "unknown severity")
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := executeLint(t, "--rule", "no-such-rule", dir)
		require.ErrorIs(t, err, lint.ErrUnknownRule)
	})

	t.Run("no inputs", func(t *testing.T) {
		_, err := executeLint(t, t.TempDir())
		require.ErrorIs(t, err, loader.ErrNoInputs)
	})
}
