package system

import (
	"testing"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/event"
)

// placeNode installs solved geometry and pushes the entity onto the stack
func placeNode(w *engine.World, rect core.Rect, policy component.FocusPolicy) core.Entity {
	e := w.CreateEntity()
	w.Components.Style.Set(e, component.DefaultStyle())
	w.Components.Node.Set(e, component.NodeComponent{
		Position: rect.Min,
		Size:     rect.Size(),
	})
	w.Components.FocusPolicy.Set(e, component.FocusPolicyComponent{Policy: policy})

	stack := engine.MustGetResource[*engine.UiStackResource](w.Resources)
	stack.Entities = append(stack.Entities, e)
	return e
}

func pointerAt(w *engine.World, x, y float64) *engine.PointerResource {
	p := engine.MustGetResource[*engine.PointerResource](w.Resources)
	p.BeginFrame()
	p.SetPosition(x, y)
	return p
}

func interactionOf(w *engine.World, e core.Entity) component.InteractionState {
	c, _ := w.Components.Interaction.Get(e)
	return c.State
}

func drainEvents(w *engine.World) []event.Event {
	return w.EventQueue().Consume()
}

func TestFocusTopmostBlockerWins(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	lower := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)
	upper := placeNode(w, core.NewRect(5, 5, 20, 20), component.PolicyBlock)

	pointerAt(w, 10, 10)
	sys.Update()

	if interactionOf(w, upper) != component.InteractionHovered {
		t.Error("topmost blocker should hover")
	}
	if interactionOf(w, lower) != component.InteractionNone {
		t.Error("occluded node must stay None")
	}
}

func TestFocusPassPolicyDoesNotCapture(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	lower := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)
	passThrough := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyPass)

	pointerAt(w, 10, 10)
	sys.Update()

	if interactionOf(w, passThrough) != component.InteractionNone {
		t.Error("pass-policy node must not hover")
	}
	if interactionOf(w, lower) != component.InteractionHovered {
		t.Error("pass-policy node must not occlude the blocker below")
	}
}

func TestFocusClipBlocksHit(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	e := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)
	// Scrolled out: effective clip excludes the pointer
	w.Components.Clip.Set(e, component.ClipComponent{Rect: core.NewRect(0, 0, 5, 5)})

	pointerAt(w, 10, 10)
	sys.Update()

	if interactionOf(w, e) != component.InteractionNone {
		t.Error("clipped-away region must not be hittable")
	}
}

func TestFocusOutsideWindowHoversNothing(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	e := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)

	p := pointerAt(w, 10, 10)
	sys.Update()
	if interactionOf(w, e) != component.InteractionHovered {
		t.Fatal("precondition: node should hover")
	}

	p.BeginFrame()
	p.Leave()
	sys.Update()

	if interactionOf(w, e) != component.InteractionNone {
		t.Error("hover must clear when the pointer leaves the window")
	}
}

func TestFocusPressAndClick(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	e := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)

	p := pointerAt(w, 10, 10)
	p.Press()
	sys.Update()
	if interactionOf(w, e) != component.InteractionPressed {
		t.Fatal("pressed node should be Pressed")
	}

	p.BeginFrame()
	p.Release()
	sys.Update()
	if interactionOf(w, e) != component.InteractionHovered {
		t.Error("released node under pointer should return to Hovered")
	}

	clicked := false
	for _, ev := range drainEvents(w) {
		if ev.Type == event.EventNodeClicked {
			payload, ok := ev.Payload.(*event.NodeClickedPayload)
			if ok && payload.Entity == e {
				clicked = true
			}
		}
	}
	if !clicked {
		t.Error("release over the pressed node should emit a click")
	}
}

func TestFocusDragOffCancelsClick(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	e := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)

	p := pointerAt(w, 10, 10)
	p.Press()
	sys.Update()

	// Drag outside, then release
	p.BeginFrame()
	p.SetPosition(100, 100)
	sys.Update()
	if interactionOf(w, e) != component.InteractionPressed {
		t.Error("press should pin the node while the button is held")
	}

	p.BeginFrame()
	p.Release()
	sys.Update()

	for _, ev := range drainEvents(w) {
		if ev.Type == event.EventNodeClicked {
			t.Error("release away from the pressed node must not click")
		}
	}
	if interactionOf(w, e) != component.InteractionNone {
		t.Error("released node away from pointer should be None")
	}
}

func TestFocusInteractionChangeEvents(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	e := placeNode(w, core.NewRect(0, 0, 20, 20), component.PolicyBlock)

	pointerAt(w, 10, 10)
	sys.Update()

	var changes []*event.InteractionChangedPayload
	for _, ev := range drainEvents(w) {
		if ev.Type == event.EventInteractionChanged {
			changes = append(changes, ev.Payload.(*event.InteractionChangedPayload))
		}
	}
	if len(changes) != 1 {
		t.Fatalf("got %d change events, want 1", len(changes))
	}
	if changes[0].Entity != e {
		t.Errorf("change on entity %d, want %d", changes[0].Entity, e)
	}
	if component.InteractionState(changes[0].New) != component.InteractionHovered {
		t.Errorf("new state = %v, want Hovered", changes[0].New)
	}

	// Unchanged frame emits nothing
	sys.Update()
	for _, ev := range drainEvents(w) {
		if ev.Type == event.EventInteractionChanged {
			t.Error("steady hover must not re-emit change events")
		}
	}
}

func TestFocusRelativeCursor(t *testing.T) {
	w := engine.NewWorld()
	sys := NewFocusSystem(w)

	e := placeNode(w, core.NewRect(10, 10, 20, 10), component.PolicyBlock)
	w.Components.RelativeCursor.Set(e, component.RelativeCursorComponent{})

	pointerAt(w, 20, 15)
	sys.Update()

	rc, _ := w.Components.RelativeCursor.Get(e)
	if rc.Normalized.X != 0.5 || rc.Normalized.Y != 0.5 {
		t.Errorf("normalized = %+v, want (0.5,0.5)", rc.Normalized)
	}
	if !rc.Inside {
		t.Error("pointer over the rect should report Inside")
	}
}
