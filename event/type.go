package event

// EventType represents the type of pipeline event
type EventType int

const (
	// === Scene Events ===

	// EventEntityRemoved signals an entity left the world
	// Trigger: World.DestroyEntity
	// Consumer: LayoutSystem (mirror pruning) | Payload: *EntityRemovedPayload
	EventEntityRemoved EventType = iota

	// EventWorldClear signals a full scene reset
	// Trigger: World.Clear
	// Consumer: LayoutSystem | Payload: nil
	EventWorldClear

	// === Input Events ===

	// EventPointerMoved reports a sampled pointer position change
	// Trigger: PointerSampler (terminal loop)
	// Consumer: diagnostics, RelativeCursor consumers | Payload: *PointerMovedPayload
	EventPointerMoved EventType = iota + 100

	// EventPointerButton reports a primary-button press/release edge
	// Trigger: PointerSampler
	// Consumer: diagnostics | Payload: *PointerButtonPayload
	EventPointerButton

	// EventViewportResized reports a viewport size change
	// Trigger: PointerSampler (terminal resize)
	// Consumer: LayoutSystem via ViewportResource | Payload: *ViewportResizedPayload
	EventViewportResized

	// === Interaction Events ===

	// EventInteractionChanged reports an edge-triggered interaction
	// transition on a single node
	// Trigger: FocusSystem
	// Consumer: AudioSystem, external observers | Payload: *InteractionChangedPayload
	EventInteractionChanged EventType = iota + 200

	// EventNodeClicked reports a press released over the node it started on
	// Trigger: FocusSystem
	// Consumer: application widgets | Payload: *NodeClickedPayload
	EventNodeClicked

	// === Audio Events ===

	// EventSoundRequest requests playback of an interaction cue
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota + 300
)
