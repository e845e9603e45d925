package engine

import (
	"testing"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[component.ZIndexComponent]()

	order := []core.Entity{5, 2, 9, 1}
	for _, e := range order {
		s.Set(e, component.ZIndexComponent{Value: int(e)})
	}

	got := s.Entities()
	if len(got) != len(order) {
		t.Fatalf("Entities() len = %d, want %d", len(got), len(order))
	}
	for i, e := range order {
		if got[i] != e {
			t.Errorf("Entities()[%d] = %d, want %d (insertion order)", i, got[i], e)
		}
	}

	// Re-setting an existing entity must not move it
	s.Set(2, component.ZIndexComponent{Value: 42})
	got = s.Entities()
	if got[1] != 2 {
		t.Errorf("re-set moved entity: order = %v", got)
	}
	if v, _ := s.Get(2); v.Value != 42 {
		t.Errorf("re-set lost value: got %d", v.Value)
	}
}

func TestStoreRemoveCompacts(t *testing.T) {
	s := NewStore[component.ZIndexComponent]()
	for e := core.Entity(1); e <= 5; e++ {
		s.Set(e, component.ZIndexComponent{})
	}

	s.Remove(3)

	want := []core.Entity{1, 2, 4, 5}
	got := s.Entities()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order after remove = %v, want %v", got, want)
			break
		}
	}
	if s.Has(3) {
		t.Error("removed entity still present")
	}

	// Removing a missing entity is a no-op
	s.Remove(99)
	if s.Count() != 4 {
		t.Errorf("Count = %d after no-op remove, want 4", s.Count())
	}
}

func TestStoreRemoveBatch(t *testing.T) {
	s := NewStore[component.ZIndexComponent]()
	for e := core.Entity(1); e <= 6; e++ {
		s.Set(e, component.ZIndexComponent{})
	}

	s.RemoveBatch([]core.Entity{2, 4, 6, 99})

	want := []core.Entity{1, 3, 5}
	got := s.Entities()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order after batch remove = %v, want %v", got, want)
			break
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[component.ZIndexComponent]()
	s.Set(1, component.ZIndexComponent{})
	s.Set(2, component.ZIndexComponent{})

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Count after Clear = %d", s.Count())
	}
	if s.Has(1) {
		t.Error("entity survived Clear")
	}
}
