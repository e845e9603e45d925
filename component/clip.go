package component

import (
	"github.com/lixenwraith/flexui/core"
)

// ClipComponent holds a node's effective visible rectangle for the frame:
// the intersection of its own overflow region with every ancestor clip.
// Present only on nodes whose visibility is actually restricted; recomputed
// fully each frame after transform propagation
type ClipComponent struct {
	Rect core.Rect
}
