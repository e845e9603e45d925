package component

import (
	"github.com/lixenwraith/flexui/core"
)

// MeasureInput carries the sizing context handed to a measure function
// Known dimensions are constraints already fixed by the layout algorithm;
// available dimensions are NaN when the axis is indefinite
type MeasureInput struct {
	KnownWidth, KnownHeight float64
	HasKnownWidth           bool
	HasKnownHeight          bool
	AvailableWidth          float64
	AvailableHeight         float64
}

// MeasureFunc supplies the intrinsic size of a content-driven leaf
// (text, images). The layout algorithm treats the result as an opaque
// sizing override; a nil func means the leaf measures as zero this frame
type MeasureFunc func(in MeasureInput) core.Vec2

// FixedMeasure returns a measure func that always reports the given size
func FixedMeasure(size core.Vec2) MeasureFunc {
	return func(MeasureInput) core.Vec2 { return size }
}

// ContentSizeComponent attaches an intrinsic-size provider to a leaf node
// Nodes with both children and a measure func ignore the measure func
type ContentSizeComponent struct {
	Measure MeasureFunc
}
