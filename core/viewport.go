package core

// ViewportID identifies a render target viewport
// Multiple independent UI roots may target different viewports
type ViewportID uint32

// DefaultViewport is the implicit target for roots without an explicit one
const DefaultViewport ViewportID = 0
