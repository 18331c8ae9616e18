package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/shapelint/internal/cli"
	"github.com/leapstack-labs/shapelint/internal/cli/commands"
	"github.com/leapstack-labs/shapelint/internal/cli/config"
)

// generateCLIDocs writes index.md plus one page per available command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	cmds := documentedCommands(root)

	index, err := renderCLIIndex(root, cmds)
	if err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	pages := map[string][]byte{"index.md": index}
	for _, cmd := range cmds {
		pages[cmd.Name()+".md"] = renderCommandPage(cmd)
	}

	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(outDir, name), pages[name], 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

// documentedCommands returns the subcommands shown in help output.
func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.IsAvailableCommand() {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func renderCLIIndex(root *cobra.Command, cmds []*cobra.Command) ([]byte, error) {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for shapelint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(firstParagraph(root.Long))
	w.CodeBlock("bash", root.Name()+" <command> [flags]")

	w.Header(2, "Commands")
	rows := make([][]string, 0, len(cmds))
	for _, cmd := range cmds {
		link := fmt.Sprintf("[%s](./%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, root.PersistentFlags())

	if err := writeConfiguration(w); err != nil {
		return nil, err
	}
	writeExitStatus(w)
	return w.Bytes(), nil
}

// writeConfiguration documents the config layers, the top-level keys and
// the file written by `shapelint init`.
func writeConfiguration(w *MarkdownWriter) error {
	w.Header(2, "Configuration")
	w.Paragraph("Settings are merged from these layers, each overriding the ones before it:")
	w.NumberedList(config.Sources())

	var rows [][]string
	for _, s := range config.Settings() {
		flag := ""
		if s.Flag != "" {
			flag = InlineCode("--" + s.Flag)
		}
		rows = append(rows, []string{InlineCode(s.Key), InlineCode(s.Env()), flag, InlineCode(s.Default), s.Description})
	}
	w.Table([]string{"Key", "Environment", "Flag", "Default", "Description"}, rows)

	w.Paragraph("Rule selection, severity overrides and rule options live under `lint` and are read from the config file only. `shapelint init` writes:")
	def, err := commands.RenderDefaultConfig()
	if err != nil {
		return err
	}
	w.CodeBlock("yaml", string(def))
	return nil
}

func renderCommandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if local := cmd.LocalNonPersistentFlags(); local.HasAvailableFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, local)
	}
	if inherited := cmd.InheritedFlags(); inherited.HasAvailableFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, inherited)
	}
	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}
	if cmd.Name() == "lint" {
		writeExitStatus(w)
	}
	return w.Bytes()
}

func writeExitStatus(w *MarkdownWriter) {
	w.Header(2, "Exit Status")
	var rows [][]string
	for _, s := range commands.ExitStatuses() {
		rows = append(rows, []string{InlineCode(fmt.Sprint(s.Code)), s.Meaning})
	}
	w.Table([]string{"Code", "Meaning"}, rows)
}

// writeFlagsTable lists flags with the configuration key each one overrides.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	keys := map[string]string{}
	for _, s := range config.Settings() {
		if s.Flag != "" {
			keys[s.Flag] = InlineCode(s.Key)
		}
	}

	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		option := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			option += ", " + InlineCode("-"+f.Shorthand)
		}
		rows = append(rows, []string{option, flagDefault(f), keys[f.Name], cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Default", "Config key", "Description"}, rows)
}

func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "[]", "false":
		return ""
	}
	return InlineCode(f.DefValue)
}

// firstParagraph returns text up to its first blank line, on one line.
func firstParagraph(text string) string {
	para, _, _ := strings.Cut(strings.TrimSpace(text), "\n\n")
	return cleanDescription(para)
}

// cleanExample strips the indentation shared by every non-blank line.
func cleanExample(example string) string {
	lines := strings.Split(strings.Trim(example, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}
