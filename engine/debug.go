//go:build !flexuidebug

package engine

// DebugAssert is a no-op in release builds; structural invariant violations
// self-heal instead of crashing the frame pipeline
func DebugAssert(cond bool, msg string) {}
