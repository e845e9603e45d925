package component

import (
	"github.com/lixenwraith/flexui/core"
)

// VisualComponent holds paint attributes consumed by the renderer
// Purely cosmetic: no field here feeds back into layout
type VisualComponent struct {
	Background    core.RGB
	HasBackground bool
	BorderColor   core.RGB
}

// Filled returns a visual with the given background color
func Filled(bg core.RGB) VisualComponent {
	return VisualComponent{Background: bg, HasBackground: true, BorderColor: bg}
}
