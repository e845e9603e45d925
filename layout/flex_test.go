package layout

import (
	"testing"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

// buildTree mirrors a root and children with the given styles and returns
// the surface; entity 1 is the root, children are 2..n+1 in order
func buildTree(rootStyle component.StyleComponent, childStyles ...component.StyleComponent) *Surface {
	s := NewSurface(nil)
	s.Upsert(1, rootStyle)
	children := make([]core.Entity, 0, len(childStyles))
	for i, cs := range childStyles {
		e := core.Entity(i + 2)
		s.Upsert(e, cs)
		children = append(children, e)
	}
	s.SetChildren(1, children)
	return s
}

func layoutOf(t *testing.T, s *Surface, e core.Entity) LayoutOutput {
	t.Helper()
	lay, ok := s.Layout(e)
	if !ok {
		t.Fatalf("entity %d has no layout", e)
	}
	return lay
}

func TestFlexGrowSplitsFreeSpace(t *testing.T) {
	grow := component.DefaultStyle()
	grow.FlexGrow = 1

	s := buildTree(component.DefaultStyle(), grow, grow)
	s.Compute(1, core.Vec2{X: 800, Y: 600})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)

	if a.Size.X != 400 || b.Size.X != 400 {
		t.Errorf("widths = %v, %v, want 400 each", a.Size.X, b.Size.X)
	}
	if a.Size.Y != 600 || b.Size.Y != 600 {
		t.Errorf("heights = %v, %v, want 600 (stretch)", a.Size.Y, b.Size.Y)
	}
	if a.Position.X != 0 || b.Position.X != 400 {
		t.Errorf("positions = %v, %v, want 0 and 400", a.Position.X, b.Position.X)
	}
}

func TestFlexGrowSumBelowOneLeavesFreeSpace(t *testing.T) {
	grow := component.DefaultStyle()
	grow.FlexGrow = 0.25

	s := buildTree(component.DefaultStyle(), grow, grow)
	s.Compute(1, core.Vec2{X: 100, Y: 10})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	// Factors sum to 0.5: only half the free space is consumed
	if a.Size.X != 25 || b.Size.X != 25 {
		t.Errorf("widths = %v, %v, want 25 each", a.Size.X, b.Size.X)
	}
}

func TestFlexWrapReverseFlipsLineOrder(t *testing.T) {
	item := component.DefaultStyle()
	item.Size = component.Size{Width: core.Px(10), Height: core.Px(5)}

	container := component.DefaultStyle()
	container.FlexWrap = component.WrapReverse

	s := buildTree(container, item, item)
	s.Compute(1, core.Vec2{X: 10, Y: 20})

	first := layoutOf(t, s, 2)
	second := layoutOf(t, s, 3)
	if second.Position.Y != 0 || first.Position.Y != 5 {
		t.Errorf("wrap-reverse: first line at y=%v, second at y=%v, want 5 and 0",
			first.Position.Y, second.Position.Y)
	}
}

func TestFlexGrowRespectsMax(t *testing.T) {
	capped := component.DefaultStyle()
	capped.FlexGrow = 1
	capped.MaxSize.Width = core.Px(100)

	grow := component.DefaultStyle()
	grow.FlexGrow = 1

	s := buildTree(component.DefaultStyle(), capped, grow)
	s.Compute(1, core.Vec2{X: 800, Y: 600})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Size.X != 100 {
		t.Errorf("capped width = %v, want 100", a.Size.X)
	}
	if b.Size.X != 700 {
		t.Errorf("sibling should absorb freed space: %v, want 700", b.Size.X)
	}
}

func TestFlexShrinkRespectsMin(t *testing.T) {
	fixed := component.DefaultStyle()
	fixed.FlexBasis = core.Px(300)
	fixed.MinSize.Width = core.Px(250)

	soft := component.DefaultStyle()
	soft.FlexBasis = core.Px(300)

	s := buildTree(component.DefaultStyle(), fixed, soft)
	s.Compute(1, core.Vec2{X: 400, Y: 100})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Size.X != 250 {
		t.Errorf("min-constrained width = %v, want 250", a.Size.X)
	}
	if b.Size.X != 150 {
		t.Errorf("unconstrained sibling = %v, want 150", b.Size.X)
	}
}

func TestFlexColumnDirection(t *testing.T) {
	root := component.DefaultStyle()
	root.FlexDirection = component.FlexColumn

	grow := component.DefaultStyle()
	grow.FlexGrow = 1

	s := buildTree(root, grow, grow)
	s.Compute(1, core.Vec2{X: 80, Y: 40})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Size.Y != 20 || b.Size.Y != 20 {
		t.Errorf("heights = %v, %v, want 20 each", a.Size.Y, b.Size.Y)
	}
	if b.Position.Y != 20 {
		t.Errorf("second child y = %v, want 20", b.Position.Y)
	}
	if a.Size.X != 80 {
		t.Errorf("cross stretch width = %v, want 80", a.Size.X)
	}
}

func TestFlexRowReverse(t *testing.T) {
	root := component.DefaultStyle()
	root.FlexDirection = component.FlexRowReverse

	item := component.DefaultStyle()
	item.Size.Width = core.Px(10)

	s := buildTree(root, item, item)
	s.Compute(1, core.Vec2{X: 100, Y: 10})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	// First child in tree order paints last along the axis
	if a.Position.X != 10 || b.Position.X != 0 {
		t.Errorf("reverse positions = %v, %v, want 10, 0", a.Position.X, b.Position.X)
	}
}

func TestJustifyContent(t *testing.T) {
	item := component.DefaultStyle()
	item.Size.Width = core.Px(100)
	item.Size.Height = core.Px(10)

	tests := []struct {
		name    string
		justify component.JustifyContent
		wantX   [2]float64
	}{
		{"center", component.JustifyCenter, [2]float64{300, 400}},
		{"end", component.JustifyEnd, [2]float64{600, 700}},
		{"space-between", component.JustifySpaceBetween, [2]float64{0, 700}},
		{"space-evenly", component.JustifySpaceEvenly, [2]float64{200, 500}},
	}

	for _, tt := range tests {
		root := component.DefaultStyle()
		root.JustifyContent = tt.justify

		s := buildTree(root, item, item)
		s.Compute(1, core.Vec2{X: 800, Y: 100})

		a := layoutOf(t, s, 2)
		b := layoutOf(t, s, 3)
		if a.Position.X != tt.wantX[0] || b.Position.X != tt.wantX[1] {
			t.Errorf("%s: positions = %v, %v, want %v", tt.name, a.Position.X, b.Position.X, tt.wantX)
		}
	}
}

func TestAlignItems(t *testing.T) {
	item := component.DefaultStyle()
	item.Size = component.Size{Width: core.Px(10), Height: core.Px(10)}

	tests := []struct {
		name  string
		align component.AlignItems
		wantY float64
	}{
		{"start", component.ItemsStart, 0},
		{"center", component.ItemsCenter, 45},
		{"end", component.ItemsEnd, 90},
	}

	for _, tt := range tests {
		root := component.DefaultStyle()
		root.AlignItems = tt.align

		s := buildTree(root, item)
		s.Compute(1, core.Vec2{X: 100, Y: 100})

		if got := layoutOf(t, s, 2).Position.Y; got != tt.wantY {
			t.Errorf("%s: y = %v, want %v", tt.name, got, tt.wantY)
		}
	}
}

func TestFlexWrap(t *testing.T) {
	root := component.DefaultStyle()
	root.FlexWrap = component.Wrap

	item := component.DefaultStyle()
	item.Size = component.Size{Width: core.Px(40), Height: core.Px(10)}

	s := buildTree(root, item, item, item)
	s.Compute(1, core.Vec2{X: 100, Y: 50})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	c := layoutOf(t, s, 4)
	if a.Position.X != 0 || b.Position.X != 40 {
		t.Errorf("first line x = %v, %v", a.Position.X, b.Position.X)
	}
	if c.Position.X != 0 || c.Position.Y != 10 {
		t.Errorf("wrapped item at (%v,%v), want (0,10)", c.Position.X, c.Position.Y)
	}
}

func TestDisplayNoneZeroesSubtree(t *testing.T) {
	hidden := component.DefaultStyle()
	hidden.Display = component.DisplayNone
	hidden.Size = component.Size{Width: core.Px(50), Height: core.Px(50)}

	grow := component.DefaultStyle()
	grow.FlexGrow = 1

	s := buildTree(component.DefaultStyle(), hidden, grow)
	s.Compute(1, core.Vec2{X: 200, Y: 100})

	h := layoutOf(t, s, 2)
	if h.Size.X != 0 || h.Size.Y != 0 {
		t.Errorf("display:none child has size %+v", h.Size)
	}
	g := layoutOf(t, s, 3)
	if g.Size.X != 200 {
		t.Errorf("sibling should take full width, got %v", g.Size.X)
	}
}

func TestPercentOfIndefiniteFallsBackToContent(t *testing.T) {
	// The middle container has auto width; its child asks for 50% of it.
	// The percentage cannot resolve during intrinsic measurement, so the
	// child measures as content (zero) instead of cycling
	container := component.DefaultStyle()

	pct := component.DefaultStyle()
	pct.Size.Width = core.Percent(50)

	s := NewSurface(nil)
	s.Upsert(1, component.DefaultStyle())
	s.Upsert(2, container)
	s.Upsert(3, pct)
	s.SetChildren(1, []core.Entity{2})
	s.SetChildren(2, []core.Entity{3})
	s.Compute(1, core.Vec2{X: 100, Y: 50})

	mid := layoutOf(t, s, 2)
	if mid.Size.X != 0 {
		t.Errorf("auto container around percent child = %v wide, want 0", mid.Size.X)
	}
	leaf := layoutOf(t, s, 3)
	if leaf.Size.X != 0 {
		t.Errorf("percent-of-indefinite = %v, want content fallback 0", leaf.Size.X)
	}
}

func TestAbsolutePositioning(t *testing.T) {
	abs := component.DefaultStyle()
	abs.Position = component.PositionAbsolute
	abs.Size = component.Size{Width: core.Px(20), Height: core.Px(10)}
	abs.Inset.Right = core.Px(10)
	abs.Inset.Bottom = core.Px(10)

	s := buildTree(component.DefaultStyle(), abs)
	s.Compute(1, core.Vec2{X: 100, Y: 50})

	got := layoutOf(t, s, 2)
	if got.Position.X != 70 || got.Position.Y != 30 {
		t.Errorf("absolute position = %+v, want (70,30)", got.Position)
	}
}

func TestAbsoluteBothInsetsSize(t *testing.T) {
	abs := component.DefaultStyle()
	abs.Position = component.PositionAbsolute
	abs.Inset = core.UiRectAll(core.Px(10))

	s := buildTree(component.DefaultStyle(), abs)
	s.Compute(1, core.Vec2{X: 100, Y: 50})

	got := layoutOf(t, s, 2)
	if got.Size.X != 80 || got.Size.Y != 30 {
		t.Errorf("inset-derived size = %+v, want 80x30", got.Size)
	}
	if got.Position.X != 10 || got.Position.Y != 10 {
		t.Errorf("inset position = %+v, want (10,10)", got.Position)
	}
}

func TestRelativeInsetOffsetsWithoutAffectingSiblings(t *testing.T) {
	shifted := component.DefaultStyle()
	shifted.Position = component.PositionRelative
	shifted.Size.Width = core.Px(10)
	shifted.Inset.Left = core.Px(5)

	plain := component.DefaultStyle()
	plain.Size.Width = core.Px(10)

	s := buildTree(component.DefaultStyle(), shifted, plain)
	s.Compute(1, core.Vec2{X: 100, Y: 10})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Position.X != 5 {
		t.Errorf("relative child x = %v, want 5", a.Position.X)
	}
	if b.Position.X != 10 {
		t.Errorf("sibling x = %v, want 10 (unaffected by relative inset)", b.Position.X)
	}
}

func TestPaddingAndGap(t *testing.T) {
	root := component.DefaultStyle()
	root.Padding = core.UiRectAll(core.Px(2))
	root.ColumnGap = core.Px(3)

	item := component.DefaultStyle()
	item.Size = component.Size{Width: core.Px(10), Height: core.Px(5)}

	s := buildTree(root, item, item)
	s.Compute(1, core.Vec2{X: 100, Y: 20})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Position.X != 2 || a.Position.Y != 2 {
		t.Errorf("first child at %+v, want (2,2) inside padding", a.Position)
	}
	if b.Position.X != 15 {
		t.Errorf("second child x = %v, want 15 (10 + 3 gap + 2 padding)", b.Position.X)
	}
}

func TestAspectRatioDerivesCross(t *testing.T) {
	item := component.DefaultStyle()
	item.Size.Width = core.Px(40)
	item.AspectRatio = 2 // width/height

	s := buildTree(component.DefaultStyle(), item)
	s.Compute(1, core.Vec2{X: 100, Y: 100})

	got := layoutOf(t, s, 2)
	if got.Size.X != 40 || got.Size.Y != 20 {
		t.Errorf("aspect size = %+v, want 40x20", got.Size)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	grow := component.DefaultStyle()
	grow.FlexGrow = 1

	s := buildTree(component.DefaultStyle(), grow, grow)
	s.Compute(1, core.Vec2{X: 800, Y: 600})
	first := layoutOf(t, s, 2)

	// Same inputs, same outputs
	s.Compute(1, core.Vec2{X: 800, Y: 600})
	second := layoutOf(t, s, 2)

	if first != second {
		t.Errorf("recompute diverged: %+v vs %+v", first, second)
	}
}

func TestMeasureFuncSizesLeaf(t *testing.T) {
	s := NewSurface(nil)
	s.Upsert(1, component.DefaultStyle())
	s.Upsert(2, component.DefaultStyle())
	s.SetChildren(1, []core.Entity{2})
	s.SetMeasure(2, component.FixedMeasure(core.Vec2{X: 13, Y: 4}))

	s.Compute(1, core.Vec2{X: 100, Y: 100})

	got := layoutOf(t, s, 2)
	if got.Size.X != 13 {
		t.Errorf("measured width = %v, want 13", got.Size.X)
	}
}

func TestUiScaleMultipliesPx(t *testing.T) {
	item := component.DefaultStyle()
	item.Size = component.Size{Width: core.Px(10), Height: core.Px(4)}

	s := buildTree(component.DefaultStyle(), item)
	s.SetScale(2)
	s.Compute(1, core.Vec2{X: 100, Y: 100})

	got := layoutOf(t, s, 2)
	if got.Size.X != 20 || got.Size.Y != 8 {
		t.Errorf("scaled size = %+v, want 20x8", got.Size)
	}
}
