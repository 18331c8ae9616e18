// Package rules provides the structural convention rules for shapelint.
//
// Rules are organized by category:
//   - control: Rules about control-flow shape (guard-clause, non-empty-catch)
//   - exports: Rules about how a module exposes its surface (export-ordering, empty-wrapper)
//   - bundled: Rules re-exposed from the style pack (style/*)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/shapelint/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/shapelint/pkg/lint/rules/control"
//	import _ "github.com/leapstack-labs/shapelint/pkg/lint/rules/exports"
package rules
