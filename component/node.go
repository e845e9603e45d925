package component

import (
	"github.com/lixenwraith/flexui/core"
)

// NodeComponent holds the computed geometry of a UI node
// All fields are outputs of the layout pipeline: LayoutSystem writes local
// geometry, TransformSystem resolves viewport-space position, OutlineSystem
// fills resolved outline widths. External code must treat it as read-only
type NodeComponent struct {
	// Size is the rounded border-box size in cells
	Size core.Vec2

	// UnroundedSize is the solver output before cell rounding, retained so a
	// relayout without style changes reproduces identical rounding
	UnroundedSize core.Vec2

	// LocalPosition is the top-left corner relative to the parent node
	LocalPosition core.Vec2

	// Position is the top-left corner in viewport space, set after transform
	// propagation
	Position core.Vec2

	// OutlineWidth and OutlineOffset are the resolved outline geometry in
	// cells (zero when the node has no outline)
	OutlineWidth  float64
	OutlineOffset float64
}

// Rect returns the node's border box in viewport space
func (n NodeComponent) Rect() core.Rect {
	return core.Rect{Min: n.Position, Max: n.Position.Add(n.Size)}
}

// OutlineRect returns the outline's outer edge in viewport space
// The outline sits outside the border box and never feeds back into layout
func (n NodeComponent) OutlineRect() core.Rect {
	return n.Rect().Inflate(n.OutlineWidth + n.OutlineOffset)
}
