package component

// FocusPolicy controls whether a node blocks pointer hit-testing for nodes
// painted beneath it
type FocusPolicy uint8

const (
	// PolicyPass lets the hit-test continue to lower nodes (default for
	// nodes without a FocusPolicyComponent)
	PolicyPass FocusPolicy = iota
	// PolicyBlock captures the pointer: the node becomes the sole hover
	// candidate and lower nodes receive nothing
	PolicyBlock
)

// FocusPolicyComponent marks a node as pointer-interactive
type FocusPolicyComponent struct {
	Policy FocusPolicy
}
