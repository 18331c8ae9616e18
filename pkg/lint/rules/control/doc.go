// Package control contains rules about the control-flow shape of function
// and handler bodies.
//
//   - guard_clause.go: functions whose whole body sits inside one if
//   - non_empty_catch.go: catch blocks that swallow errors
//
// Import this package to register its rules:
//
//	import _ "github.com/leapstack-labs/shapelint/pkg/lint/rules/control"
package control
