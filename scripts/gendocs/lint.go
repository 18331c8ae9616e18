package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/shapelint/pkg/lint"
	_ "github.com/leapstack-labs/shapelint/pkg/lint/rules" // register rules
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"control": "Rules about control flow inside function bodies.",
	"exports": "Rules about how and where a module exports its bindings.",
	"style":   "Rules re-exposed from the bundled style pack.",
}

// generateLintDocs writes an index page plus one page per rule. A rule's page
// sits at its ID under outDir, matching the rule's documentation URL path.
func generateLintDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAll()

	if err := generateLintIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, rule := range rules {
		name := strings.ToLower(rule.ID()) + ".md"
		path := filepath.Join(outDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rule.ID(), err)
		}

		w := NewMarkdownWriter()
		w.Frontmatter(rule.ID(), cleanDescription(rule.Description()))
		w.GeneratedMarker()
		writeRuleDoc(w, rule)
		if err := os.WriteFile(path, w.Bytes(), 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s", name)
	}

	return nil
}

// generateLintIndex generates the rules overview page.
func generateLintIndex(outDir string, rules []lint.Rule) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Lint rules for shapelint")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("shapelint ships **%d rules**.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `shapelint.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled:
    - guard-clause          # disable rule
  severity:
    empty-wrapper: error    # override severity
  rules:
    export-ordering:
      allowReExport: true   # rule-specific option`)

	grouped := groupRulesByGroup(rules)
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, group := range groups {
		w.Header(2, capitalizeFirst(group))
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		var rows [][]string
		for _, rule := range grouped[group] {
			link := fmt.Sprintf("[%s](./%s)", InlineCode(rule.ID()), strings.ToLower(rule.ID()))
			rows = append(rows, []string{link, InlineCode(rule.DefaultSeverity().String()), cleanDescription(rule.Description())})
		}
		w.Table([]string{"Rule", "Severity", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// groupRulesByGroup organizes rules by their Group field.
func groupRulesByGroup(rules []lint.Rule) map[string][]lint.Rule {
	grouped := make(map[string][]lint.Rule)
	for _, r := range rules {
		grouped[r.Group()] = append(grouped[r.Group()], r)
	}
	// Sort rules within each group by ID
	for group := range grouped {
		sort.Slice(grouped[group], func(i, j int) bool {
			return grouped[group][i].ID() < grouped[group][j].ID()
		})
	}
	return grouped
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.Rule) {
	w.Header(1, fmt.Sprintf("%s - %s", rule.ID(), rule.Name()))

	w.Line(fmt.Sprintf("**Severity:** %s | **Stability:** %s",
		InlineCode(rule.DefaultSeverity().String()), rule.Stability()))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description()))

	if rationale := rule.Rationale(); rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rationale))
	}

	if badExample := rule.BadExample(); badExample != "" {
		w.Header(2, "Bad")
		w.CodeBlock("js", badExample)
	}

	if goodExample := rule.GoodExample(); goodExample != "" {
		w.Header(2, "Good")
		w.CodeBlock("js", goodExample)
	}

	if fix := rule.Fix(); fix != "" {
		w.Header(2, "How to Fix")
		w.Paragraph(strings.TrimSpace(fix))
	}

	if configKeys := rule.ConfigKeys(); len(configKeys) > 0 {
		w.Header(2, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following configuration options: %s",
			InlineCode(strings.Join(configKeys, ", "))))
	}

	if messages := rule.Messages(); len(messages) > 0 {
		w.Header(2, "Messages")
		ids := make([]string, 0, len(messages))
		for id := range messages {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		var rows [][]string
		for _, id := range ids {
			rows = append(rows, []string{InlineCode(id), messages[id]})
		}
		w.Table([]string{"ID", "Message"}, rows)
	}
}
