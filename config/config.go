// Package config holds cross-package runtime configuration: the
// debug-assertion toggle and its Assert helper. Per-algorithm-family
// options (such as bnb.Option) live in their own packages.
//
// The teacher gates expensive invariant checks behind a compile-time
// "#if defined DEBUG" equivalent. Go has no preprocessor, so the same
// intent — cheap in release, loud in development — is expressed as a
// package-level flag read once per call.
package config

// DebugAssertions enables the checks made through Assert; the degree-2
// invariant in properties.BranchlessPaths is the only one. core's
// construction-time checks (non-tree input and similar) panic whatever this
// flag says. Default false, in which case Assert checks nothing.
var DebugAssertions = false

// Assert panics with msg if DebugAssertions is enabled and cond is false.
// It is a no-op otherwise. Never call Assert for conditions that can
// legitimately occur at runtime — only for caller-contract violations.
func Assert(cond bool, msg string) {
	if DebugAssertions && !cond {
		panic("linarr: assertion failed: " + msg)
	}
}
