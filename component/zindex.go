package component

// ZIndexScope selects which stacking context a z-index competes in
type ZIndexScope uint8

const (
	// ScopeLocal compares against siblings under the same parent (default)
	ScopeLocal ZIndexScope = iota
	// ScopeGlobal lifts the node into the root stacking context, comparing
	// against all other globally scoped nodes and root nodes
	ScopeGlobal
)

// ZIndexComponent overrides paint order among stacking siblings
// Absent means local z-index 0; ties resolve by insertion order
type ZIndexComponent struct {
	Scope ZIndexScope
	Value int
}
