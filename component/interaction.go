package component

// InteractionState is the pointer relationship of a node for the current frame
type InteractionState uint8

const (
	InteractionNone InteractionState = iota
	InteractionHovered
	InteractionPressed
)

// String returns a human-readable state name
func (s InteractionState) String() string {
	switch s {
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "None"
	}
}

// InteractionComponent holds the resolved interaction state
// At most one node is Hovered or Pressed at a time (the topmost blocking hit);
// transitions are also emitted as EventInteractionChanged
type InteractionComponent struct {
	State InteractionState
}
