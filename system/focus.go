package system

import (
	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/event"
	"github.com/lixenwraith/flexui/parameter"
)

// FocusSystem resolves pointer interaction against the previous frame's
// stack
//
// Hit-testing walks the stack topmost-first; the first blocking node whose
// clip-respecting rect contains the pointer wins. Pass-policy nodes never
// capture and never occlude. At most one node is Hovered or Pressed per
// frame; a press pins its node until release, and releasing over the node
// the press started on emits a click
//
// Focus runs before layout on purpose: it consumes last frame's geometry,
// matching what the user actually saw when the input happened
type FocusSystem struct {
	engine.SystemBase

	hovered core.Entity
	pressed core.Entity
}

// NewFocusSystem creates the interaction resolver
func NewFocusSystem(world *engine.World) *FocusSystem {
	return &FocusSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *FocusSystem) Name() string {
	return "focus"
}

func (s *FocusSystem) Priority() int {
	return parameter.PriorityFocus
}

func (s *FocusSystem) Update() {
	pointer := engine.MustGetResource[*engine.PointerResource](s.World.Resources)
	stack := engine.MustGetResource[*engine.UiStackResource](s.World.Resources)

	target := core.NullEntity
	if pointer.Inside {
		target = s.hitTest(stack.Entities, pointer.Position)
	}

	if pointer.JustPressed {
		s.pressed = target
	}

	clicked := core.NullEntity
	if pointer.JustReleased {
		if s.pressed != core.NullEntity && s.pressed == target {
			clicked = s.pressed
		}
		s.pressed = core.NullEntity
	}

	// Desired states: the pressed node stays Pressed while the button is
	// held even if the pointer slides off; otherwise the hit target hovers
	newHovered := core.NullEntity
	newPressed := core.NullEntity
	if pointer.PrimaryDown && s.pressed != core.NullEntity {
		newPressed = s.pressed
	} else if target != core.NullEntity {
		newHovered = target
	}

	s.transition(s.hovered, newHovered, newPressed)
	if s.pressed != core.NullEntity && s.pressed != s.hovered {
		s.transition(s.pressed, newHovered, newPressed)
	}

	s.hovered = newHovered
	if newPressed != core.NullEntity {
		s.hovered = newPressed
		s.setState(newPressed, component.InteractionPressed)
	} else if newHovered != core.NullEntity {
		s.setState(newHovered, component.InteractionHovered)
	}

	if clicked != core.NullEntity {
		s.World.PushEvent(event.EventNodeClicked, &event.NodeClickedPayload{Entity: clicked})
	}

	s.updateRelativeCursors(pointer)
}

// transition demotes e to None unless it is the new hover/press target
func (s *FocusSystem) transition(e, newHovered, newPressed core.Entity) {
	if e == core.NullEntity || e == newHovered || e == newPressed {
		return
	}
	s.setState(e, component.InteractionNone)
}

// setState writes the interaction state and emits the change edge
// A destroyed entity has no focus policy anymore: writing would resurrect
// its component, so it is skipped
func (s *FocusSystem) setState(e core.Entity, state component.InteractionState) {
	if !s.Component.FocusPolicy.Has(e) {
		return
	}
	old, _ := s.Component.Interaction.Get(e)
	if old.State == state {
		return
	}
	s.Component.Interaction.Set(e, component.InteractionComponent{State: state})
	s.World.PushEvent(event.EventInteractionChanged, &event.InteractionChangedPayload{
		Entity: e,
		Old:    event.InteractionState(old.State),
		New:    event.InteractionState(state),
	})
}

// hitTest returns the topmost blocking node containing p, or NullEntity
func (s *FocusSystem) hitTest(stack []core.Entity, p core.Vec2) core.Entity {
	for i := len(stack) - 1; i >= 0; i-- {
		e := stack[i]
		fp, ok := s.Component.FocusPolicy.Get(e)
		if !ok || fp.Policy != component.PolicyBlock {
			continue
		}
		if s.hitRect(e).Contains(p) {
			return e
		}
	}
	return core.NullEntity
}

// hitRect is the node's border box intersected with its effective clip:
// a node scrolled out of view cannot be hit even though its rect is alive
func (s *FocusSystem) hitRect(e core.Entity) core.Rect {
	node, ok := s.Component.Node.Get(e)
	if !ok {
		return core.Rect{}
	}
	rect := node.Rect()
	if clip, ok := s.Component.Clip.Get(e); ok {
		rect = rect.Intersect(clip.Rect)
	}
	return rect
}

// updateRelativeCursors refreshes pointer-relative coordinates on every node
// that asks for them, independent of hover resolution
func (s *FocusSystem) updateRelativeCursors(pointer *engine.PointerResource) {
	for _, e := range s.Component.RelativeCursor.Entities() {
		node, ok := s.Component.Node.Get(e)
		if !ok {
			continue
		}
		rect := node.Rect()

		rc := component.RelativeCursorComponent{}
		if pointer.Inside && rect.Width() > 0 && rect.Height() > 0 {
			rc.Normalized = core.Vec2{
				X: (pointer.Position.X - rect.Min.X) / rect.Width(),
				Y: (pointer.Position.Y - rect.Min.Y) / rect.Height(),
			}
			rc.Inside = s.hitRect(e).Contains(pointer.Position)
		}
		s.Component.RelativeCursor.Set(e, rc)
	}
}
