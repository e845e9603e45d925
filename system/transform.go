package system

import (
	"math"

	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/parameter"
)

// TransformSystem propagates local layout positions into viewport space and
// snaps geometry to the cell grid
//
// Rounding works on absolute coordinates: each edge rounds independently, so
// Size = round(abs+unrounded) - round(abs) per axis. Adjacent siblings whose
// unrounded edges touch stay gapless after rounding; the same node's rounded
// size may differ by one cell depending on where it lands
type TransformSystem struct {
	engine.SystemBase
}

// NewTransformSystem creates the transform propagation system
func NewTransformSystem(world *engine.World) *TransformSystem {
	return &TransformSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *TransformSystem) Name() string {
	return "transform"
}

func (s *TransformSystem) Priority() int {
	return parameter.PriorityTransform
}

func (s *TransformSystem) Update() {
	for _, e := range s.Component.Style.Entities() {
		if s.World.Hierarchy.IsRoot(e) || s.Component.TargetViewport.Has(e) {
			s.propagate(e, core.Vec2{})
		}
	}
}

// propagate walks one subtree accumulating unrounded absolute positions
func (s *TransformSystem) propagate(e core.Entity, parentAbs core.Vec2) {
	node, ok := s.Component.Node.Get(e)
	if !ok {
		return
	}

	abs := parentAbs.Add(node.LocalPosition)

	node.Position = core.Vec2{X: math.Round(abs.X), Y: math.Round(abs.Y)}
	node.Size = core.Vec2{
		X: math.Round(abs.X+node.UnroundedSize.X) - node.Position.X,
		Y: math.Round(abs.Y+node.UnroundedSize.Y) - node.Position.Y,
	}
	s.Component.Node.Set(e, node)

	for _, child := range s.World.Hierarchy.Children(e) {
		if s.Component.TargetViewport.Has(child) {
			// Independent root, propagated from its own viewport origin
			continue
		}
		s.propagate(child, abs)
	}
}
