package layout

import (
	"math"
	"testing"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

func newTestSurface() *Surface {
	return NewSurface(nil)
}

func TestSurfaceUpsertBijection(t *testing.T) {
	s := newTestSurface()

	h1 := s.Upsert(1, component.DefaultStyle())
	h2 := s.Upsert(2, component.DefaultStyle())

	if h1 == h2 {
		t.Error("distinct entities share a handle")
	}
	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2", s.Count())
	}

	// Upserting again keeps the same handle
	again := s.Upsert(1, component.DefaultStyle())
	if again != h1 {
		t.Errorf("re-upsert changed handle: %+v -> %+v", h1, again)
	}
	if s.Count() != 2 {
		t.Errorf("Count after re-upsert = %d, want 2", s.Count())
	}
}

func TestSurfaceRemoveAdvancesGeneration(t *testing.T) {
	s := newTestSurface()

	h1 := s.Upsert(1, component.DefaultStyle())
	s.Remove(1)

	if s.Contains(1) {
		t.Error("removed entity still mirrored")
	}

	// Slot reuse must mint a fresh generation
	h2 := s.Upsert(2, component.DefaultStyle())
	if h2.Index == h1.Index && h2.Generation == h1.Generation {
		t.Error("reused slot kept the old generation; stale handles could alias")
	}
}

func TestSurfaceRetainPrunes(t *testing.T) {
	s := newTestSurface()
	for e := core.Entity(1); e <= 4; e++ {
		s.Upsert(e, component.DefaultStyle())
	}

	live := map[core.Entity]struct{}{2: {}, 4: {}}
	s.Retain(live)

	if s.Count() != 2 {
		t.Errorf("Count after Retain = %d, want 2", s.Count())
	}
	if s.Contains(1) || s.Contains(3) {
		t.Error("Retain kept a dead entity")
	}
	if !s.Contains(2) || !s.Contains(4) {
		t.Error("Retain dropped a live entity")
	}
}

func TestSurfaceSetChildrenSkipsUnmirrored(t *testing.T) {
	s := newTestSurface()
	s.Upsert(1, component.DefaultStyle())
	s.Upsert(2, component.DefaultStyle())

	// 99 has no mirror node and must be ignored
	s.SetChildren(1, []core.Entity{2, 99})

	s.Compute(1, core.Vec2{X: 10, Y: 10})
	if _, ok := s.Layout(2); !ok {
		t.Error("mirrored child has no layout")
	}
	if _, ok := s.Layout(99); ok {
		t.Error("unmirrored child acquired a layout")
	}
}

func TestSurfaceComputeNonFiniteAvailable(t *testing.T) {
	s := newTestSurface()
	s.Upsert(1, component.DefaultStyle())

	s.Compute(1, core.Vec2{X: math.Inf(1), Y: 100})

	lay, ok := s.Layout(1)
	if !ok {
		t.Fatal("root has no layout")
	}
	if lay.Size.X != 0 || lay.Size.Y != 0 {
		t.Errorf("non-finite available should collapse to zero, got %+v", lay.Size)
	}
}

func TestSurfaceComputeUnknownRoot(t *testing.T) {
	s := newTestSurface()
	// Never panics, never creates nodes
	s.Compute(42, core.Vec2{X: 10, Y: 10})
	if s.Count() != 0 {
		t.Errorf("Compute on unknown root created %d nodes", s.Count())
	}
}

func TestSurfaceMeasureOnlyOnLiveNodes(t *testing.T) {
	s := newTestSurface()
	s.Upsert(1, component.DefaultStyle())

	s.SetMeasure(1, component.FixedMeasure(core.Vec2{X: 7, Y: 3}))
	s.Compute(1, core.Vec2{X: 100, Y: 100})

	lay, _ := s.Layout(1)
	if lay.Size.X != 100 || lay.Size.Y != 100 {
		// Roots stretch to available regardless of measure
		t.Errorf("root size = %+v, want 100x100", lay.Size)
	}

	// SetMeasure on an unknown entity is a no-op
	s.SetMeasure(99, component.FixedMeasure(core.Vec2{X: 1, Y: 1}))
}
