package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/internal/testutil"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "shapelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	fs.IntP("jobs", "j", 0, "")
	fs.String("format", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultInclude}, cfg.Include)
	assert.Equal(t, []string{DefaultExclude}, cfg.Exclude)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Lint)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	writeConfig(t, dir, `
include:
  - "src/**/*.estree.json"
output: json
jobs: 4
docs_url: https://example.test/rules
lint:
  disabled: [guard-clause]
  severity:
    empty-wrapper: error
  rules:
    export-ordering:
      allowReExport: true
`)
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	chdir(t, sub)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/**/*.estree.json"}, cfg.Include)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "https://example.test/rules", cfg.DocsURL)
	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"guard-clause"}, cfg.Lint.Disabled)
	assert.Equal(t, "error", cfg.Lint.Severity["empty-wrapper"])
	assert.Equal(t, true, cfg.Lint.Rules["export-ordering"]["allowReExport"])

	resolved, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

func TestLoadConfig_Precedence(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, "output: markdown\njobs: 2\n")
	t.Setenv("SHAPELINT_JOBS", "3")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--output", "json", "--format", "text"}))

	cfg, err := LoadConfig(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat, "flag beats file")
	assert.Equal(t, 3, cfg.Jobs, "env beats file")
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_SettingEnv(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())
	t.Setenv(Setting{Key: "docs_url"}.Env(), "https://docs.test/rules")
	t.Setenv(Setting{Key: "output"}.Env(), "json")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.test/rules", cfg.DocsURL)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestSettings(t *testing.T) {
	keys := map[string]bool{}
	typ := reflect.TypeOf(Config{})
	for i := range typ.NumField() {
		keys[typ.Field(i).Tag.Get("koanf")] = true
	}

	for _, s := range Settings() {
		assert.True(t, keys[s.Key], "%s is not a Config key", s.Key)
		assert.NotEmpty(t, s.Description, s.Key)
		if s.Flag == "" {
			continue
		}
		key, ok := flagKey(s.Flag)
		assert.True(t, ok, s.Flag)
		assert.Equal(t, s.Key, key)
	}

	_, ok := flagKey("format")
	assert.False(t, ok, "command flags are not configuration")
	assert.Equal(t, "SHAPELINT_DOCS_URL", Setting{Key: "docs_url"}.Env())
	assert.Len(t, Sources(), 4)
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, "output: markdown\n")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := LoadConfig(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		errSubstr string
	}{
		{
			name:      "bad yaml",
			body:      "output: [unclosed\n",
			errSubstr: "error reading config file",
		},
		{
			name:      "bad output",
			body:      "output: html\n",
			errSubstr: "invalid output format",
		},
		{
			name:      "bad severity",
			body:      "lint:\n  severity:\n    guard-clause: fatal\n",
			errSubstr: "unknown severity",
		},
		{
			name:      "negative jobs",
			body:      "jobs: -1\n",
			errSubstr: "jobs must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			path := writeConfig(t, t.TempDir(), tt.body)

			_, err := LoadConfig(path, nil)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := testutil.NewTestLogger(t)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
