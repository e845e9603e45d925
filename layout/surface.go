package layout

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/status"
)

// node is one slot of the mirrored layout tree
type node struct {
	entity     core.Entity
	generation uint32
	live       bool

	style      component.StyleComponent
	measure    component.MeasureFunc
	hasMeasure bool

	parent   int // slot index, -1 for roots
	children []int

	layout LayoutOutput
}

// Surface mirrors the scene tree for the layout algorithm
// It is mutated only by LayoutSystem during its sync phase; no other
// component holds node references across a sync boundary
type Surface struct {
	nodes []node
	free  []int
	index map[core.Entity]Handle

	scale    float64
	viewport core.Vec2 // available space of the current Compute call

	statSelfHeals *atomic.Int64
	statNodes     *atomic.Int64
}

// NewSurface creates an empty mirror
func NewSurface(reg *status.Registry) *Surface {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Surface{
		index:         make(map[core.Entity]Handle),
		scale:         1,
		statSelfHeals: reg.Ints.Get("layout.selfheals"),
		statNodes:     reg.Ints.Get("layout.nodes"),
	}
}

// SetScale sets the Px multiplier; non-positive values clamp to 1
func (s *Surface) SetScale(scale float64) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	s.scale = scale
}

// Count returns the number of live mirrored nodes
func (s *Surface) Count() int {
	return len(s.index)
}

// Contains reports whether the entity has a live mirror node
func (s *Surface) Contains(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// HandleOf returns the entity's current handle
func (s *Surface) HandleOf(e core.Entity) (Handle, bool) {
	h, ok := s.index[e]
	return h, ok
}

// Upsert creates or updates the mirror node for an entity
// Style translation is total: every style field maps to solver input, with
// invalid values clamped to the nearest valid one. A missing slot for a
// known entity is a structural inconsistency: it self-heals by recreating
// the node and counting layout.selfheals
func (s *Surface) Upsert(e core.Entity, style component.StyleComponent) Handle {
	style = sanitizeStyle(style)

	if h, ok := s.index[e]; ok {
		idx := int(h.Index)
		if idx < len(s.nodes) && s.nodes[idx].live && s.nodes[idx].generation == h.Generation {
			s.nodes[idx].style = style
			return h
		}
		// Index entry points at a dead or reused slot
		s.statSelfHeals.Add(1)
		delete(s.index, e)
	}

	idx := s.alloc()
	n := &s.nodes[idx]
	n.entity = e
	n.live = true
	n.style = style
	n.measure = nil
	n.hasMeasure = false
	n.parent = -1
	n.children = n.children[:0]
	n.layout = LayoutOutput{}

	h := Handle{Index: uint32(idx), Generation: n.generation}
	s.index[e] = h
	s.statNodes.Store(int64(len(s.index)))
	return h
}

func (s *Surface) alloc() int {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		return idx
	}
	s.nodes = append(s.nodes, node{generation: 1})
	return len(s.nodes) - 1
}

// SetMeasure installs an intrinsic-size provider on the entity's node
func (s *Surface) SetMeasure(e core.Entity, fn component.MeasureFunc) {
	if idx, ok := s.slotOf(e); ok {
		s.nodes[idx].measure = fn
		s.nodes[idx].hasMeasure = fn != nil
	}
}

// ClearMeasure removes the intrinsic-size provider
func (s *Surface) ClearMeasure(e core.Entity) {
	if idx, ok := s.slotOf(e); ok {
		s.nodes[idx].measure = nil
		s.nodes[idx].hasMeasure = false
	}
}

// SetChildren mirrors the scene-tree child order for an entity
// Children without a mirrored node (layout-inert entities) are skipped
func (s *Surface) SetChildren(e core.Entity, children []core.Entity) {
	idx, ok := s.slotOf(e)
	if !ok {
		return
	}
	n := &s.nodes[idx]
	n.children = n.children[:0]
	for _, child := range children {
		if cIdx, ok := s.slotOf(child); ok && cIdx != idx {
			n.children = append(n.children, cIdx)
			s.nodes[cIdx].parent = idx
		}
	}
}

// Remove releases the entity's mirror node
// Must run before the next layout pass once the owning entity is gone; the
// slot's generation advances so stale handles can never resolve again
func (s *Surface) Remove(e core.Entity) {
	h, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)

	idx := int(h.Index)
	if idx >= len(s.nodes) {
		return
	}
	n := &s.nodes[idx]
	n.live = false
	n.generation++
	n.measure = nil
	n.hasMeasure = false
	n.children = n.children[:0]
	n.parent = -1
	s.free = append(s.free, idx)
	s.statNodes.Store(int64(len(s.index)))
}

// Retain prunes every mirrored entity not present in live
// Called by LayoutSystem before compute so orphaned handles never survive
// into a layout pass
func (s *Surface) Retain(live map[core.Entity]struct{}) {
	var stale []core.Entity
	for e := range s.index {
		if _, ok := live[e]; !ok {
			stale = append(stale, e)
		}
	}
	for _, e := range stale {
		s.Remove(e)
	}
}

// Compute runs the layout algorithm for the tree rooted at root
// available is the viewport-derived space for this root. Results are read
// back per entity via Layout; a malformed root is a no-op
func (s *Surface) Compute(root core.Entity, available core.Vec2) {
	idx, ok := s.slotOf(root)
	if !ok {
		return
	}
	if !available.IsFinite() {
		available = core.Vec2{}
	}
	available = available.ClampMin()
	s.viewport = available

	s.computeRoot(idx, available)
}

// Layout returns the solved geometry for an entity
func (s *Surface) Layout(e core.Entity) (LayoutOutput, bool) {
	idx, ok := s.slotOf(e)
	if !ok {
		return LayoutOutput{}, false
	}
	return s.nodes[idx].layout, true
}

// slotOf resolves an entity to a live slot index
func (s *Surface) slotOf(e core.Entity) (int, bool) {
	h, ok := s.index[e]
	if !ok {
		return 0, false
	}
	idx := int(h.Index)
	if idx >= len(s.nodes) || !s.nodes[idx].live || s.nodes[idx].generation != h.Generation {
		return 0, false
	}
	return idx, true
}

// sanitizeStyle clamps invalid style values to their nearest valid ones
// (configuration errors never propagate as failures)
func sanitizeStyle(st component.StyleComponent) component.StyleComponent {
	if st.FlexGrow < 0 || math.IsNaN(st.FlexGrow) || math.IsInf(st.FlexGrow, 0) {
		st.FlexGrow = 0
	}
	if st.FlexShrink < 0 || math.IsNaN(st.FlexShrink) || math.IsInf(st.FlexShrink, 0) {
		st.FlexShrink = 0
	}
	if st.AspectRatio < 0 || math.IsNaN(st.AspectRatio) || math.IsInf(st.AspectRatio, 0) {
		st.AspectRatio = 0
	}
	if st.GridRow.Start < 0 {
		st.GridRow.Start = 0
	}
	if st.GridColumn.Start < 0 {
		st.GridColumn.Start = 0
	}
	return st
}

// resolveVal resolves a style length to cells, applying the UI scale to Px
func (s *Surface) resolveVal(v core.Val, basis optFloat) optFloat {
	out, ok := v.Resolve(basis.basis(), s.viewport)
	if !ok {
		return none()
	}
	if v.Unit == core.UnitPx {
		out *= s.scale
	}
	return some(out)
}

// resolveTrack resolves a grid track's fixed size; fr and auto return none
func (s *Surface) resolveTrack(t component.GridTrack, basis optFloat) optFloat {
	switch t.Kind {
	case component.TrackPx:
		return some(t.Value * s.scale)
	case component.TrackPercent:
		if !basis.valid {
			return none()
		}
		return some(basis.value * t.Value / 100)
	default:
		return none()
	}
}
