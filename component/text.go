package component

import (
	"github.com/lixenwraith/flexui/core"
)

// TextComponent is glyph content for a leaf node
// TextMeasureSystem derives the node's intrinsic size from it; the renderer
// draws it clipped to the node's rect
type TextComponent struct {
	Content string
	// Wrap breaks the content at the available width instead of measuring a
	// single line
	Wrap  bool
	Color core.RGB
}
