package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/shapelint/internal/cli/config"
	"github.com/leapstack-labs/shapelint/internal/cli/output"
)

const configHeader = `# shapelint configuration.
# Rule IDs are listed by 'shapelint rules'. Severities: error, warning, info, hint.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default shapelint.yaml",
		Long: `Write a shapelint.yaml with the default input patterns and rule settings.

The file is written to the given directory, or the current one.`,
		Example: `  # Initialize in current directory
  shapelint init

  # Initialize in another directory
  shapelint init ./packages/web

  # Force overwrite existing config
  shapelint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			r := NewCommandContext(cmd, "").Renderer
			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", configPath, err)
	}

	data, err := RenderDefaultConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.StatusLine(configPath, "success", "created")
	r.Println("")
	r.Success("shapelint initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Emit ESTree JSON from your parser as *.estree.json files")
	r.Println("  2. Run 'shapelint rules' to see the available rules")
	r.Println("  3. Run 'shapelint lint' to check your code")

	return nil
}

// RenderDefaultConfig returns the shapelint.yaml that init writes.
func RenderDefaultConfig() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.Default()); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
