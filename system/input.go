package system

import (
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/event"
	"github.com/lixenwraith/flexui/input"
	"github.com/lixenwraith/flexui/parameter"
)

// InputSystem folds buffered input samples into the frame's pointer state
//
// Runs first: it clears last frame's edge flags, applies every sample the
// terminal goroutine buffered since the previous frame, and emits the
// corresponding pipeline events. Everything after this system sees one
// coherent pointer snapshot
type InputSystem struct {
	engine.SystemBase

	sampler *input.PointerSampler
	scratch []input.Sample
}

// NewInputSystem creates the input folding system
func NewInputSystem(world *engine.World, sampler *input.PointerSampler) *InputSystem {
	return &InputSystem{
		SystemBase: engine.NewSystemBase(world),
		sampler:    sampler,
	}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update() {
	pointer := engine.MustGetResource[*engine.PointerResource](s.World.Resources)
	pointer.BeginFrame()

	if s.sampler == nil {
		return
	}

	s.scratch = s.sampler.Drain(s.scratch[:0])
	for _, sample := range s.scratch {
		switch sample.Kind {
		case input.SampleMotion:
			pointer.SetPosition(sample.X, sample.Y)
			s.World.PushEvent(event.EventPointerMoved, &event.PointerMovedPayload{X: sample.X, Y: sample.Y})
		case input.SampleButton:
			if sample.Pressed {
				pointer.Press()
			} else {
				pointer.Release()
			}
			s.World.PushEvent(event.EventPointerButton, &event.PointerButtonPayload{Pressed: sample.Pressed})
		case input.SampleLeave:
			pointer.Leave()
		case input.SampleResize:
			viewports := engine.MustGetResource[*engine.ViewportResource](s.World.Resources)
			viewports.Resize(sample.Viewport, sample.Width, sample.Height)
			s.World.PushEvent(event.EventViewportResized, &event.ViewportResizedPayload{
				Viewport: sample.Viewport,
				Width:    sample.Width,
				Height:   sample.Height,
			})
		}
	}
}
