package layout

import (
	"math"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

// edges holds resolved box-model edge widths in cells
type edges struct {
	left, right, top, bottom float64
}

func (e edges) horizontal() float64 { return e.left + e.right }
func (e edges) vertical() float64   { return e.top + e.bottom }

func (e edges) main(a axis) float64 {
	if a == axisHorizontal {
		return e.horizontal()
	}
	return e.vertical()
}

func (e edges) mainStart(a axis) float64 {
	if a == axisHorizontal {
		return e.left
	}
	return e.top
}

func (e edges) cross(a axis) float64 {
	if a == axisHorizontal {
		return e.vertical()
	}
	return e.horizontal()
}

func (e edges) crossStart(a axis) float64 {
	if a == axisHorizontal {
		return e.top
	}
	return e.left
}

// resolveEdges resolves a UiRect against the containing block
// Auto edges resolve to zero (auto margins are not distributed; clamped out)
func (s *Surface) resolveEdges(r core.UiRect, horizBasis, vertBasis optFloat) edges {
	return edges{
		left:   math.Max(s.resolveVal(r.Left, horizBasis).or(0), 0),
		right:  math.Max(s.resolveVal(r.Right, horizBasis).or(0), 0),
		top:    math.Max(s.resolveVal(r.Top, vertBasis).or(0), 0),
		bottom: math.Max(s.resolveVal(r.Bottom, vertBasis).or(0), 0),
	}
}

// styleSize resolves the explicit style size on one axis
func (s *Surface) styleSize(idx int, a axis, basis optFloat) optFloat {
	st := &s.nodes[idx].style
	if a == axisHorizontal {
		return s.resolveVal(st.Size.Width, basis)
	}
	return s.resolveVal(st.Size.Height, basis)
}

// clampAxis applies min/max style constraints on one axis
// Min/max clamps run after flexible sizing, per the flexbox model
func (s *Surface) clampAxis(idx int, a axis, v float64, basis optFloat) float64 {
	st := &s.nodes[idx].style
	var minV, maxV core.Val
	if a == axisHorizontal {
		minV, maxV = st.MinSize.Width, st.MaxSize.Width
	} else {
		minV, maxV = st.MinSize.Height, st.MaxSize.Height
	}
	if mx := s.resolveVal(maxV, basis); mx.valid && v > mx.value {
		v = mx.value
	}
	if mn := s.resolveVal(minV, basis); mn.valid && v < mn.value {
		v = mn.value
	}
	return math.Max(v, 0)
}

// aspectDerived derives the size of one axis from the other via aspect ratio
// (ratio = width/height); returns none when no ratio is set
func aspectDerived(ratio float64, known float64, knownAxis axis) optFloat {
	if ratio <= 0 {
		return none()
	}
	if knownAxis == axisHorizontal {
		return some(known / ratio)
	}
	return some(known * ratio)
}

// measureContent returns the content-driven size of a node's border box
// Known dimensions short-circuit their axis. Percentages cannot resolve in
// an intrinsic context and fall back to auto — this is what breaks circular
// percentage dependencies: the cycle's inner percentage simply measures as
// content. Wrapping is ignored for intrinsic measurement
func (s *Surface) measureContent(idx int, knownW, knownH optFloat, availW, availH float64) core.Vec2 {
	n := &s.nodes[idx]
	st := &n.style

	if st.Display == component.DisplayNone {
		return core.Vec2{}
	}
	if knownW.valid && knownH.valid {
		return core.Vec2{X: knownW.value, Y: knownH.value}
	}

	// Explicit sizes that resolve without a containing block (px, viewport)
	if !knownW.valid {
		knownW = s.resolveVal(st.Size.Width, none())
	}
	if !knownH.valid {
		knownH = s.resolveVal(st.Size.Height, none())
	}
	if knownW.valid && knownH.valid {
		return core.Vec2{X: knownW.value, Y: knownH.value}
	}
	if st.AspectRatio > 0 {
		if knownW.valid && !knownH.valid {
			knownH = aspectDerived(st.AspectRatio, knownW.value, axisHorizontal)
		} else if knownH.valid && !knownW.valid {
			knownW = aspectDerived(st.AspectRatio, knownH.value, axisVertical)
		}
		if knownW.valid && knownH.valid {
			return core.Vec2{X: knownW.value, Y: knownH.value}
		}
	}

	if len(n.children) == 0 {
		return s.measureLeaf(idx, knownW, knownH, availW, availH)
	}

	border := s.resolveEdges(st.Border, none(), none())
	padding := s.resolveEdges(st.Padding, none(), none())
	inner := core.Vec2{
		X: border.horizontal() + padding.horizontal(),
		Y: border.vertical() + padding.vertical(),
	}

	var content core.Vec2
	if st.Display == component.DisplayGrid {
		content = s.measureGridContent(idx, availW, availH)
	} else {
		content = s.measureFlexContent(idx, availW, availH)
	}

	out := content.Add(inner)
	if knownW.valid {
		out.X = knownW.value
	}
	if knownH.valid {
		out.Y = knownH.value
	}
	return out.ClampMin()
}

// measureLeaf sizes a childless node from its measure func, or zero
// A leaf awaiting external measurement (asset warm-up) is zero-size for the
// frame, not an error
func (s *Surface) measureLeaf(idx int, knownW, knownH optFloat, availW, availH float64) core.Vec2 {
	n := &s.nodes[idx]
	if !n.hasMeasure {
		return core.Vec2{X: knownW.or(0), Y: knownH.or(0)}
	}
	out := n.measure(component.MeasureInput{
		KnownWidth:      knownW.or(0),
		KnownHeight:     knownH.or(0),
		HasKnownWidth:   knownW.valid,
		HasKnownHeight:  knownH.valid,
		AvailableWidth:  availW,
		AvailableHeight: availH,
	})
	if !out.IsFinite() {
		out = core.Vec2{}
	}
	out = out.ClampMin()
	if knownW.valid {
		out.X = knownW.value
	}
	if knownH.valid {
		out.Y = knownH.value
	}
	return out
}

// measureFlexContent measures a flex container's content box:
// sum of child outer bases along the main axis (plus gaps), max outer cross
func (s *Surface) measureFlexContent(idx int, availW, availH float64) core.Vec2 {
	n := &s.nodes[idx]
	st := &n.style

	main := axisVertical
	if st.FlexDirection.IsRow() {
		main = axisHorizontal
	}

	var mainSum, crossMax float64
	count := 0
	for _, cIdx := range n.children {
		cst := &s.nodes[cIdx].style
		if cst.Display == component.DisplayNone || cst.Position == component.PositionAbsolute {
			continue
		}
		count++
		childSize := s.measureContent(cIdx, none(), none(), availW, availH)
		margins := s.resolveEdges(cst.Margin, none(), none())

		b := s.flexBasisOf(cIdx, main, none(), availW, availH)
		mainSum += b + margins.main(main)

		cross := mainOf(childSize, crossAxis(main)) + margins.cross(main)
		crossMax = math.Max(crossMax, cross)
	}

	gap := s.mainGap(st, main, none())
	if count > 1 {
		mainSum += gap * float64(count-1)
	}
	return vecOf(mainSum, crossMax, main)
}

// flexBasisOf resolves a child's hypothetical main size (border box)
// Resolution order: flex-basis, explicit main size, aspect-derived, content
func (s *Surface) flexBasisOf(cIdx int, main axis, containerMain optFloat, availW, availH float64) float64 {
	cst := &s.nodes[cIdx].style

	var b optFloat
	if v := s.resolveVal(cst.FlexBasis, containerMain); v.valid {
		b = v
	} else if v := s.styleSize(cIdx, main, containerMain); v.valid {
		b = v
	} else if cst.AspectRatio > 0 {
		// Aspect ratio applies before flexible sizing: a definite cross size
		// fixes the basis
		crossA := crossAxis(main)
		if cv := s.styleSize(cIdx, crossA, none()); cv.valid {
			b = aspectDerived(cst.AspectRatio, cv.value, crossA)
		}
	}
	if !b.valid {
		size := s.measureContent(cIdx, none(), none(), availW, availH)
		b = some(mainOf(size, main))
	}
	return s.clampAxis(cIdx, main, b.or(0), containerMain)
}

// mainGap resolves the gap between items along the container's main axis
func (s *Surface) mainGap(st *component.StyleComponent, main axis, basis optFloat) float64 {
	if main == axisHorizontal {
		return math.Max(s.resolveVal(st.ColumnGap, basis).or(0), 0)
	}
	return math.Max(s.resolveVal(st.RowGap, basis).or(0), 0)
}

// crossGap resolves the gap between lines along the container's cross axis
func (s *Surface) crossGap(st *component.StyleComponent, main axis, basis optFloat) float64 {
	if main == axisHorizontal {
		return math.Max(s.resolveVal(st.RowGap, basis).or(0), 0)
	}
	return math.Max(s.resolveVal(st.ColumnGap, basis).or(0), 0)
}

func crossAxis(a axis) axis {
	if a == axisHorizontal {
		return axisVertical
	}
	return axisHorizontal
}

// computeRoot sizes an independent root against its available space
// An auto-sized root stretches to the available space (deliberate policy:
// roots are the viewport's children)
func (s *Surface) computeRoot(idx int, available core.Vec2) {
	n := &s.nodes[idx]
	st := &n.style

	if st.Display == component.DisplayNone {
		s.zeroSubtree(idx)
		return
	}

	w := s.styleSize(idx, axisHorizontal, some(available.X)).or(available.X)
	h := s.styleSize(idx, axisVertical, some(available.Y)).or(available.Y)
	if st.AspectRatio > 0 {
		if !st.Size.Height.IsAuto() && st.Size.Width.IsAuto() {
			w = aspectDerived(st.AspectRatio, h, axisVertical).or(w)
		} else if !st.Size.Width.IsAuto() && st.Size.Height.IsAuto() {
			h = aspectDerived(st.AspectRatio, w, axisHorizontal).or(h)
		}
	}
	w = s.clampAxis(idx, axisHorizontal, w, some(available.X))
	h = s.clampAxis(idx, axisVertical, h, some(available.Y))

	inset := edges{
		left: s.resolveVal(st.Inset.Left, some(available.X)).or(0),
		top:  s.resolveVal(st.Inset.Top, some(available.Y)).or(0),
	}

	n.layout = sanitize(LayoutOutput{
		Position: core.Vec2{X: inset.left, Y: inset.top},
		Size:     core.Vec2{X: w, Y: h},
	})
	s.layoutChildren(idx)
}

// layoutChildren lays out the children of a node whose own size is final
func (s *Surface) layoutChildren(idx int) {
	n := &s.nodes[idx]
	if len(n.children) == 0 {
		return
	}
	st := &n.style
	size := n.layout.Size

	border := s.resolveEdges(st.Border, some(size.X), some(size.Y))
	padding := s.resolveEdges(st.Padding, some(size.X), some(size.Y))

	content := core.Vec2{
		X: math.Max(size.X-border.horizontal()-padding.horizontal(), 0),
		Y: math.Max(size.Y-border.vertical()-padding.vertical(), 0),
	}
	origin := core.Vec2{
		X: border.left + padding.left,
		Y: border.top + padding.top,
	}

	var flow, absolute []int
	for _, cIdx := range n.children {
		cst := &s.nodes[cIdx].style
		switch {
		case cst.Display == component.DisplayNone:
			s.zeroSubtree(cIdx)
		case cst.Position == component.PositionAbsolute:
			absolute = append(absolute, cIdx)
		default:
			flow = append(flow, cIdx)
		}
	}

	if len(flow) > 0 {
		if st.Display == component.DisplayGrid {
			s.gridLayout(idx, content, origin, flow)
		} else {
			s.flexLayout(idx, content, origin, flow)
		}
		for _, cIdx := range flow {
			s.applyRelativeInset(cIdx, content)
			s.nodes[cIdx].layout = sanitize(s.nodes[cIdx].layout)
			s.layoutChildren(cIdx)
		}
	}

	for _, cIdx := range absolute {
		s.absoluteLayout(idx, cIdx, size, border)
		s.nodes[cIdx].layout = sanitize(s.nodes[cIdx].layout)
		s.layoutChildren(cIdx)
	}
}

// applyRelativeInset offsets a relatively positioned node by its inset
// without affecting siblings
func (s *Surface) applyRelativeInset(idx int, containing core.Vec2) {
	st := &s.nodes[idx].style
	if st.Position != component.PositionRelative {
		return
	}
	lay := &s.nodes[idx].layout
	if l := s.resolveVal(st.Inset.Left, some(containing.X)); l.valid {
		lay.Position.X += l.value
	} else if r := s.resolveVal(st.Inset.Right, some(containing.X)); r.valid {
		lay.Position.X -= r.value
	}
	if t := s.resolveVal(st.Inset.Top, some(containing.Y)); t.valid {
		lay.Position.Y += t.value
	} else if b := s.resolveVal(st.Inset.Bottom, some(containing.Y)); b.valid {
		lay.Position.Y -= b.value
	}
}

// zeroSubtree hides a display:none subtree: zero geometry, recursively
func (s *Surface) zeroSubtree(idx int) {
	s.nodes[idx].layout = LayoutOutput{}
	for _, cIdx := range s.nodes[idx].children {
		s.zeroSubtree(cIdx)
	}
}
