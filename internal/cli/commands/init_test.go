package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/shapelint/internal/cli/config"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name     string
		setupDir func(t *testing.T, dir string) // setup before running
		args     []string
		wantErr  bool
	}{
		{
			name: "init empty directory",
			args: []string{},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "shapelint.yaml"), []byte("existing"), 0o600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "shapelint.yaml"), []byte("existing"), 0o600)
			},
			args: []string{"--force"},
		},
		{
			name: "init into new subdirectory",
			args: []string{"packages/web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			oldWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() { _ = os.Chdir(oldWd) }()

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			dir := "."
			if len(tt.args) > 0 && tt.args[0] != "--force" {
				dir = tt.args[0]
			}
			content, err := os.ReadFile(filepath.Join(dir, "shapelint.yaml"))
			require.NoError(t, err)
			assert.NotEqual(t, "existing", string(content))
			assert.Contains(t, buf.String(), "shapelint initialized!")
		})
	}
}

func TestInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "--force flag should exist")
}

func TestInitCreatesLoadableConfig(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile("shapelint.yaml")
	require.NoError(t, err, "failed to read shapelint.yaml")
	for _, expected := range []string{
		"# shapelint configuration.",
		"include:",
		"**/*.estree.json",
		"output: auto",
		"export-ordering:",
		"allowReExport: false",
	} {
		assert.Contains(t, string(content), expected, "config should contain %q", expected)
	}

	config.ResetConfig()
	defer config.ResetConfig()
	cfg, err := config.LoadConfig("shapelint.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Include, cfg.Include)
	require.NotNil(t, cfg.Lint)
	assert.Equal(t, false, cfg.Lint.Rules["export-ordering"]["allowReExport"])
}
