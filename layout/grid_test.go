package layout

import (
	"testing"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

func gridRoot(cols, rows []component.GridTrack) component.StyleComponent {
	st := component.DefaultStyle()
	st.Display = component.DisplayGrid
	st.GridTemplateColumns = cols
	st.GridTemplateRows = rows
	return st
}

func TestGridFrTracks(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1), component.Fr(1), component.Fr(1)},
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
	)

	items := make([]component.StyleComponent, 6)
	for i := range items {
		items[i] = component.DefaultStyle()
	}

	s := buildTree(root, items...)
	s.Compute(1, core.Vec2{X: 300, Y: 100})

	// Row-flow auto placement: three across, then the next row
	wantPos := []core.Vec2{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 200, Y: 0},
		{X: 0, Y: 50}, {X: 100, Y: 50}, {X: 200, Y: 50},
	}
	for i := range items {
		got := layoutOf(t, s, core.Entity(i+2))
		if got.Position != wantPos[i] {
			t.Errorf("item %d at %+v, want %+v", i, got.Position, wantPos[i])
		}
		if got.Size.X != 100 || got.Size.Y != 50 {
			t.Errorf("item %d size %+v, want 100x50 (stretch)", i, got.Size)
		}
	}
}

func TestGridFixedAndFrTracks(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.TrackPxOf(50), component.Fr(1)},
		[]component.GridTrack{component.Fr(1)},
	)

	item := component.DefaultStyle()
	s := buildTree(root, item, item)
	s.Compute(1, core.Vec2{X: 200, Y: 40})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Size.X != 50 {
		t.Errorf("fixed track item width = %v, want 50", a.Size.X)
	}
	if b.Size.X != 150 || b.Position.X != 50 {
		t.Errorf("fr track item = %v wide at x=%v, want 150 at 50", b.Size.X, b.Position.X)
	}
}

func TestGridExplicitPlacement(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
	)

	placed := component.DefaultStyle()
	placed.GridRow = component.GridPlacement{Start: 2}
	placed.GridColumn = component.GridPlacement{Start: 2}

	auto := component.DefaultStyle()

	s := buildTree(root, placed, auto)
	s.Compute(1, core.Vec2{X: 100, Y: 100})

	p := layoutOf(t, s, 2)
	if p.Position.X != 50 || p.Position.Y != 50 {
		t.Errorf("explicit placement at %+v, want (50,50)", p.Position)
	}
	// Auto item flows into the first free cell
	a := layoutOf(t, s, 3)
	if a.Position.X != 0 || a.Position.Y != 0 {
		t.Errorf("auto item at %+v, want (0,0)", a.Position)
	}
}

func TestGridSpan(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
		[]component.GridTrack{component.Fr(1)},
	)

	wide := component.DefaultStyle()
	wide.GridColumn = component.GridPlacement{Start: 1, Span: 2}

	s := buildTree(root, wide)
	s.Compute(1, core.Vec2{X: 100, Y: 20})

	got := layoutOf(t, s, 2)
	if got.Size.X != 100 {
		t.Errorf("spanning item width = %v, want 100", got.Size.X)
	}
}

func TestGridGaps(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
		[]component.GridTrack{component.Fr(1)},
	)
	root.ColumnGap = core.Px(10)

	item := component.DefaultStyle()
	s := buildTree(root, item, item)
	s.Compute(1, core.Vec2{X: 110, Y: 20})

	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	if a.Size.X != 50 || b.Size.X != 50 {
		t.Errorf("track widths with gap = %v, %v, want 50 each", a.Size.X, b.Size.X)
	}
	if b.Position.X != 60 {
		t.Errorf("second column x = %v, want 60", b.Position.X)
	}
}

func TestGridColumnFlow(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
	)
	root.GridAutoFlow = component.FlowColumn

	items := make([]component.StyleComponent, 3)
	for i := range items {
		items[i] = component.DefaultStyle()
	}

	s := buildTree(root, items...)
	s.Compute(1, core.Vec2{X: 100, Y: 100})

	// Column flow fills rows within a column first
	a := layoutOf(t, s, 2)
	b := layoutOf(t, s, 3)
	c := layoutOf(t, s, 4)
	if a.Position != (core.Vec2{X: 0, Y: 0}) {
		t.Errorf("first at %+v, want (0,0)", a.Position)
	}
	if b.Position != (core.Vec2{X: 0, Y: 50}) {
		t.Errorf("second at %+v, want (0,50)", b.Position)
	}
	if c.Position != (core.Vec2{X: 50, Y: 0}) {
		t.Errorf("third at %+v, want (50,0)", c.Position)
	}
}

func TestGridItemAlignment(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1)},
		[]component.GridTrack{component.Fr(1)},
	)
	root.JustifyItems = component.ItemsCenter
	root.AlignItems = component.ItemsCenter

	item := component.DefaultStyle()
	item.Size = component.Size{Width: core.Px(10), Height: core.Px(10)}

	s := buildTree(root, item)
	s.Compute(1, core.Vec2{X: 100, Y: 50})

	got := layoutOf(t, s, 2)
	if got.Position.X != 45 || got.Position.Y != 20 {
		t.Errorf("centered item at %+v, want (45,20)", got.Position)
	}
	if got.Size.X != 10 || got.Size.Y != 10 {
		t.Errorf("explicit size overridden: %+v", got.Size)
	}
}

func TestGridImplicitTracks(t *testing.T) {
	root := gridRoot(
		[]component.GridTrack{component.Fr(1), component.Fr(1)},
		[]component.GridTrack{component.TrackPxOf(10)},
	)
	root.GridAutoRows = []component.GridTrack{component.TrackPxOf(5)}

	items := make([]component.StyleComponent, 4)
	for i := range items {
		items[i] = component.DefaultStyle()
	}

	s := buildTree(root, items...)
	s.Compute(1, core.Vec2{X: 100, Y: 100})

	// Third and fourth items land on an implicit 5-cell row
	c := layoutOf(t, s, 4)
	if c.Position.Y != 10 {
		t.Errorf("implicit row y = %v, want 10", c.Position.Y)
	}
	if c.Size.Y != 5 {
		t.Errorf("implicit row height = %v, want 5", c.Size.Y)
	}
}
