package component

import (
	"github.com/lixenwraith/flexui/core"
)

// RelativeCursorComponent tracks the pointer position normalized to the
// node's rect: (0,0) at top-left, (1,1) at bottom-right
// Updated by FocusSystem every frame for nodes that carry it; values outside
// [0,1] mean the pointer is beyond the rect on that axis
type RelativeCursorComponent struct {
	Normalized core.Vec2
	// Inside is true when the pointer is over the node's clip-respecting rect
	Inside bool
}
