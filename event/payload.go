package event

import (
	"github.com/lixenwraith/flexui/core"
)

// InteractionState mirrors component.InteractionState without importing it
// (event is a leaf package; payloads carry raw values)
type InteractionState uint8

// EntityRemovedPayload accompanies EventEntityRemoved
type EntityRemovedPayload struct {
	Entity core.Entity
}

// PointerMovedPayload accompanies EventPointerMoved
type PointerMovedPayload struct {
	X, Y float64
}

// PointerButtonPayload accompanies EventPointerButton
type PointerButtonPayload struct {
	Pressed bool
}

// ViewportResizedPayload accompanies EventViewportResized
type ViewportResizedPayload struct {
	Viewport      core.ViewportID
	Width, Height int
}

// InteractionChangedPayload accompanies EventInteractionChanged
// Old and New are component.InteractionState values
type InteractionChangedPayload struct {
	Entity   core.Entity
	Old, New InteractionState
}

// NodeClickedPayload accompanies EventNodeClicked
type NodeClickedPayload struct {
	Entity core.Entity
}

// SoundRequestPayload accompanies EventSoundRequest
type SoundRequestPayload struct {
	Cue core.SoundCue
}
