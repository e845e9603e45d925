package component

import (
	"github.com/lixenwraith/flexui/core"
)

// OutlineComponent draws a border outside the node's border box
// Outlines do not participate in layout or clipping; resolved widths land in
// NodeComponent one frame after a size change at the latest
type OutlineComponent struct {
	// Width of the outline; Percent resolves against the node's own width
	Width core.Val
	// Offset is the gap between border box and outline
	Offset core.Val
	Color  core.RGB
}
