package system

import (
	"math"

	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/parameter"
)

// OutlineSystem resolves outline widths into node geometry
//
// Outlines draw outside the border box and never feed back into layout:
// resolution happens after layout, against the node's own solved width.
// Percent widths use the node width as basis; viewport units use the
// default viewport
type OutlineSystem struct {
	engine.SystemBase
}

// NewOutlineSystem creates the outline resolver
func NewOutlineSystem(world *engine.World) *OutlineSystem {
	return &OutlineSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *OutlineSystem) Name() string {
	return "outline"
}

func (s *OutlineSystem) Priority() int {
	return parameter.PriorityOutline
}

func (s *OutlineSystem) Update() {
	viewports := engine.MustGetResource[*engine.ViewportResource](s.World.Resources)
	viewport := viewports.Size(core.DefaultViewport)

	for _, e := range s.Component.Outline.Entities() {
		outline, _ := s.Component.Outline.Get(e)
		node, ok := s.Component.Node.Get(e)
		if !ok {
			continue
		}

		width := math.Max(outline.Width.ResolveOr(node.Size.X, viewport, 0), 0)
		offset := math.Max(outline.Offset.ResolveOr(node.Size.X, viewport, 0), 0)
		if node.OutlineWidth == width && node.OutlineOffset == offset {
			continue
		}
		node.OutlineWidth = width
		node.OutlineOffset = offset
		s.Component.Node.Set(e, node)
	}

	// An outline removed between frames leaves resolved geometry behind;
	// clear it so readers of NodeComponent never see a ghost outline
	for _, e := range s.Component.Node.Entities() {
		if s.Component.Outline.Has(e) {
			continue
		}
		node, _ := s.Component.Node.Get(e)
		if node.OutlineWidth == 0 && node.OutlineOffset == 0 {
			continue
		}
		node.OutlineWidth = 0
		node.OutlineOffset = 0
		s.Component.Node.Set(e, node)
	}
}
