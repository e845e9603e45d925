package system

import (
	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/event"
	"github.com/lixenwraith/flexui/parameter"
)

// AudioSystem plays interaction feedback cues
//
// Entirely event-driven: interaction transitions map to cues, explicit
// sound requests pass through. A world without an audio player runs the
// same pipeline silently
type AudioSystem struct {
	engine.SystemBase
}

// NewAudioSystem creates the audio feedback system
func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) Update() {
	// No-op: cues play via event handler
}

// EventTypes returns events this system handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventInteractionChanged,
		event.EventNodeClicked,
		event.EventSoundRequest,
	}
}

// HandleEvent maps interaction edges to sound cues
func (s *AudioSystem) HandleEvent(ev event.Event) {
	audio := engine.MustGetResource[*engine.AudioResource](s.World.Resources)
	if audio.Player == nil {
		return
	}

	switch ev.Type {
	case event.EventInteractionChanged:
		p, ok := ev.Payload.(*event.InteractionChangedPayload)
		if !ok {
			return
		}
		switch component.InteractionState(p.New) {
		case component.InteractionHovered:
			// Release back to hover is not a new hover
			if component.InteractionState(p.Old) == component.InteractionNone {
				audio.Player.Play(core.CueHover)
			}
		case component.InteractionPressed:
			audio.Player.Play(core.CuePress)
		}
	case event.EventNodeClicked:
		audio.Player.Play(core.CueClick)
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			audio.Player.Play(p.Cue)
		}
	}
}
