package component

import (
	"github.com/lixenwraith/flexui/core"
)

// TargetViewportComponent explicitly routes a UI subtree to a viewport
// A node carrying this component becomes an independent layout root even if
// it has a UI-tree parent
type TargetViewportComponent struct {
	Viewport core.ViewportID
}

// ResolvedViewportComponent is the propagated viewport target: the nearest
// ancestor's explicit target, or the default viewport.
// Written by ViewportTargetSystem, read by LayoutSystem and the renderer
type ResolvedViewportComponent struct {
	Viewport core.ViewportID
}
