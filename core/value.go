package core

import "math"

// Unit tags the interpretation of a Val scalar
type Unit uint8

const (
	// UnitAuto defers sizing to the layout algorithm (content or stretch)
	UnitAuto Unit = iota
	// UnitPx is an absolute length in cells, multiplied by the UI scale
	UnitPx
	// UnitPercent resolves against the containing block's resolved size
	UnitPercent
	// UnitVw resolves against viewport width (value = percent of width)
	UnitVw
	// UnitVh resolves against viewport height
	UnitVh
	// UnitVMin resolves against the smaller viewport axis
	UnitVMin
	// UnitVMax resolves against the larger viewport axis
	UnitVMax
)

// Val is a style length: a scalar with a unit
// The zero value is Auto
type Val struct {
	Unit  Unit
	Value float64
}

// Auto returns the automatic length
func Auto() Val { return Val{Unit: UnitAuto} }

// Px returns an absolute length in cells
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a containing-block-relative length (0-100 scale)
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Vw returns a viewport-width-relative length (0-100 scale)
func Vw(v float64) Val { return Val{Unit: UnitVw, Value: v} }

// Vh returns a viewport-height-relative length (0-100 scale)
func Vh(v float64) Val { return Val{Unit: UnitVh, Value: v} }

// VMin returns a length relative to the smaller viewport axis
func VMin(v float64) Val { return Val{Unit: UnitVMin, Value: v} }

// VMax returns a length relative to the larger viewport axis
func VMax(v float64) Val { return Val{Unit: UnitVMax, Value: v} }

// IsAuto reports whether the value defers to the layout algorithm
func (v Val) IsAuto() bool { return v.Unit == UnitAuto }

// Resolve converts the value to cells
// basis is the containing block size for the relevant axis; pass NaN when the
// containing block is indefinite. Returns false when the value cannot be
// resolved (Auto, indefinite percentage basis, or a non-finite result) —
// callers treat unresolved as automatic sizing, never as an error
func (v Val) Resolve(basis float64, viewport Vec2) (float64, bool) {
	var out float64
	switch v.Unit {
	case UnitPx:
		out = v.Value
	case UnitPercent:
		if math.IsNaN(basis) || math.IsInf(basis, 0) {
			return 0, false
		}
		out = basis * v.Value / 100
	case UnitVw:
		out = viewport.X * v.Value / 100
	case UnitVh:
		out = viewport.Y * v.Value / 100
	case UnitVMin:
		out = math.Min(viewport.X, viewport.Y) * v.Value / 100
	case UnitVMax:
		out = math.Max(viewport.X, viewport.Y) * v.Value / 100
	default:
		return 0, false
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

// ResolveOr resolves the value, falling back to def when unresolved
func (v Val) ResolveOr(basis float64, viewport Vec2, def float64) float64 {
	if out, ok := v.Resolve(basis, viewport); ok {
		return out
	}
	return def
}

// UiRect holds one Val per rectangle edge (margins, padding, borders, insets)
type UiRect struct {
	Left, Right, Top, Bottom Val
}

// UiRectAll builds a UiRect with the same value on every edge
func UiRectAll(v Val) UiRect {
	return UiRect{Left: v, Right: v, Top: v, Bottom: v}
}

// UiRectAxes builds a UiRect from horizontal and vertical values
func UiRectAxes(horizontal, vertical Val) UiRect {
	return UiRect{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}
