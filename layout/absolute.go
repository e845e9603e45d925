package layout

import (
	"math"

	"github.com/lixenwraith/flexui/core"
)

// absoluteLayout positions an absolutely positioned child against its
// parent's padding box. Size comes from explicit style, from opposing
// insets, or from content; unset insets anchor to the start edge
func (s *Surface) absoluteLayout(idx, cIdx int, size core.Vec2, border edges) {
	cst := &s.nodes[cIdx].style

	containing := core.Vec2{
		X: math.Max(size.X-border.horizontal(), 0),
		Y: math.Max(size.Y-border.vertical(), 0),
	}
	margins := s.resolveEdges(cst.Margin, some(containing.X), some(containing.Y))

	left := s.resolveVal(cst.Inset.Left, some(containing.X))
	right := s.resolveVal(cst.Inset.Right, some(containing.X))
	top := s.resolveVal(cst.Inset.Top, some(containing.Y))
	bottom := s.resolveVal(cst.Inset.Bottom, some(containing.Y))

	w := s.absoluteAxis(cIdx, axisHorizontal, containing, left, right, margins.horizontal())
	h := s.absoluteAxis(cIdx, axisVertical, containing, top, bottom, margins.vertical())
	if cst.AspectRatio > 0 {
		if cst.Size.Width.IsAuto() && !cst.Size.Height.IsAuto() {
			w = s.clampAxis(cIdx, axisHorizontal,
				aspectDerived(cst.AspectRatio, h, axisVertical).or(w), some(containing.X))
		} else if cst.Size.Height.IsAuto() && !cst.Size.Width.IsAuto() {
			h = s.clampAxis(cIdx, axisVertical,
				aspectDerived(cst.AspectRatio, w, axisHorizontal).or(h), some(containing.Y))
		}
	}

	var x, y float64
	switch {
	case left.valid:
		x = left.value + margins.left
	case right.valid:
		x = containing.X - right.value - w - margins.right
	default:
		x = margins.left
	}
	switch {
	case top.valid:
		y = top.value + margins.top
	case bottom.valid:
		y = containing.Y - bottom.value - h - margins.bottom
	default:
		y = margins.top
	}

	s.nodes[cIdx].layout = LayoutOutput{
		Position: core.Vec2{X: border.left + x, Y: border.top + y},
		Size:     core.Vec2{X: w, Y: h},
	}
}

// absoluteAxis resolves one axis of an absolutely positioned box
func (s *Surface) absoluteAxis(cIdx int, a axis, containing core.Vec2, start, end optFloat, marginSum float64) float64 {
	basis := some(mainOf(containing, a))
	if v := s.styleSize(cIdx, a, basis); v.valid {
		return s.clampAxis(cIdx, a, v.value, basis)
	}
	if start.valid && end.valid {
		v := mainOf(containing, a) - start.value - end.value - marginSum
		return s.clampAxis(cIdx, a, math.Max(v, 0), basis)
	}
	measured := s.measureContent(cIdx, none(), none(), containing.X, containing.Y)
	return s.clampAxis(cIdx, a, mainOf(measured, a), basis)
}
