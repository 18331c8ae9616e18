// Package exports contains rules about how a module exposes its public
// surface.
//
//   - export_ordering.go: declarations first, exports last, no indirection
//   - empty_wrapper.go: exported functions that only forward their arguments
//
// Import this package to register its rules:
//
//	import _ "github.com/leapstack-labs/shapelint/pkg/lint/rules/exports"
package exports
