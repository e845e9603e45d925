package engine

import (
	"testing"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/event"
)

func TestWorldDestroyEntity(t *testing.T) {
	w := NewWorld()

	parent := w.CreateEntity()
	child := w.CreateEntity()
	w.Components.Style.Set(parent, component.DefaultStyle())
	w.Components.Style.Set(child, component.DefaultStyle())
	w.Components.Visual.Set(child, component.Filled(core.RGB{R: 10, G: 20, B: 30}))
	w.Hierarchy.SetParent(child, parent)

	w.DestroyEntity(child)

	if w.Components.Style.Has(child) || w.Components.Visual.Has(child) {
		t.Error("destroyed entity kept components")
	}
	if kids := w.Hierarchy.Children(parent); len(kids) != 0 {
		t.Errorf("destroyed entity still in tree: %v", kids)
	}

	events := w.EventQueue().Consume()
	found := false
	for _, ev := range events {
		if ev.Type == event.EventEntityRemoved {
			p, ok := ev.Payload.(*event.EntityRemovedPayload)
			if ok && p.Entity == child {
				found = true
			}
		}
	}
	if !found {
		t.Error("DestroyEntity did not announce removal")
	}
}

func TestWorldSystemOrdering(t *testing.T) {
	w := NewWorld()

	var ran []string
	w.AddSystem(&orderProbe{name: "late", priority: 500, ran: &ran})
	w.AddSystem(&orderProbe{name: "early", priority: 100, ran: &ran})
	w.AddSystem(&orderProbe{name: "mid", priority: 300, ran: &ran})

	w.Update()

	want := []string{"early", "mid", "late"}
	if len(ran) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(ran), len(want))
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("run order = %v, want %v", ran, want)
			break
		}
	}
}

func TestWorldEntityIDsUnique(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Errorf("CreateEntity returned duplicate id %d", a)
	}
}

type orderProbe struct {
	name     string
	priority int
	ran      *[]string
}

func (p *orderProbe) Name() string  { return p.name }
func (p *orderProbe) Priority() int { return p.priority }
func (p *orderProbe) Update()       { *p.ran = append(*p.ran, p.name) }
