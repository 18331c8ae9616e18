// Package lint provides the rule contract, registry and host driver for
// structural checks over ESTree syntax trees.
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/shapelint/pkg/lint/rules"
//
// # Writing Rules
//
// A rule's Create function is called once per file and returns callbacks
// keyed by node kind. A key with the ":exit" suffix fires after the node's
// children have been visited:
//
//	var MyRule = lint.RuleDef{
//		ID:       "my-rule",
//		Group:    "custom",
//		Severity: lint.SeverityWarning,
//		Messages: map[string]string{"found": "Found a debugger statement."},
//		Create: func(ctx *lint.Context) lint.Visitors {
//			return lint.Visitors{
//				"DebuggerStatement": func(n *estree.Node) { ctx.Report(n, "found") },
//			}
//		},
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// Rules hold no state across files; anything cached belongs in the closure
// built by Create.
//
// # Configuration
//
// Use Config to control which rules run, their severity and options:
//
//	config := lint.NewConfig()
//	config.Disable("guard-clause")
//	config.SetSeverity("empty-wrapper", lint.SeverityError)
//	config.SetRuleOptions("export-ordering", map[string]any{"allowReExport": true})
//
// # Running
//
//	analyzer := lint.NewAnalyzer(config, lint.WithLogger(logger))
//	diags := analyzer.AnalyzeFile(&lint.File{Path: path, Source: src, Program: prog})
package lint
