// Package layout owns the mirrored layout tree and the flexbox/grid solver.
// The Surface is the exclusive owner of layout node handles: entities map
// 1:1 to internal nodes, handles carry generation counters so a stale handle
// can never alias a different entity's node.
package layout

import (
	"math"

	"github.com/lixenwraith/flexui/core"
)

// Handle identifies an internal layout node
// Index addresses the node slot; Generation detects staleness after slot
// reuse. The zero Handle is invalid
type Handle struct {
	Index      uint32
	Generation uint32
}

// LayoutOutput is the solver result for one node
// Position is relative to the parent node's top-left corner (roots: relative
// to the viewport origin); Size is the border-box size. Values are always
// finite and non-negative
type LayoutOutput struct {
	Position core.Vec2
	Size     core.Vec2
}

// optFloat is a maybe-float for known/indefinite dimensions
type optFloat struct {
	value float64
	valid bool
}

func some(v float64) optFloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return optFloat{}
	}
	return optFloat{value: v, valid: true}
}

func none() optFloat { return optFloat{} }

// or returns the value or the fallback
func (o optFloat) or(def float64) float64 {
	if o.valid {
		return o.value
	}
	return def
}

// basis returns the value for percentage resolution: NaN when indefinite,
// which Val.Resolve treats as unresolvable (the percentage-cycle fallback)
func (o optFloat) basis() float64 {
	if o.valid {
		return o.value
	}
	return math.NaN()
}

// axis selects main-axis orientation helpers
type axis uint8

const (
	axisHorizontal axis = iota
	axisVertical
)

// mainOf extracts the component of v along a
func mainOf(v core.Vec2, a axis) float64 {
	if a == axisHorizontal {
		return v.X
	}
	return v.Y
}

// vecOf builds a Vec2 from main/cross components along a
func vecOf(main, cross float64, a axis) core.Vec2 {
	if a == axisHorizontal {
		return core.Vec2{X: main, Y: cross}
	}
	return core.Vec2{X: cross, Y: main}
}

// sanitize clamps a solver output to finite, non-negative geometry
func sanitize(out LayoutOutput) LayoutOutput {
	fix := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	out.Position.X = fix(out.Position.X)
	out.Position.Y = fix(out.Position.Y)
	out.Size.X = math.Max(fix(out.Size.X), 0)
	out.Size.Y = math.Max(fix(out.Size.Y), 0)
	return out
}
