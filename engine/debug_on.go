//go:build flexuidebug

package engine

// DebugAssert panics on violated structural invariants when built with the
// flexuidebug tag. Release builds self-heal instead
func DebugAssert(cond bool, msg string) {
	if !cond {
		panic("invariant violated: " + msg)
	}
}
