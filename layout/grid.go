package layout

import (
	"math"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

// gridItem is the working state for one in-flow child of a grid container
type gridItem struct {
	idx     int
	margins edges

	row, col         int // 0-based track indices; -1 until placed
	rowSpan, colSpan int
}

// gridTracks is the per-axis track state during sizing
type gridTracks struct {
	defs  []component.GridTrack
	size  []float64
	fixed []bool // size is final (px/percent), not content-driven
}

// gridLayout implements the simplified grid model for one container:
// place items (explicit first, then auto-flow into the first free area),
// size tracks (fixed, then content-driven auto, then fr from the remainder),
// then position each item within its cell area
func (s *Surface) gridLayout(idx int, content, origin core.Vec2, flow []int) {
	st := &s.nodes[idx].style

	items := s.placeGridItems(idx, flow)
	rowCount, colCount := gridExtents(st, items)

	rowGap := math.Max(s.resolveVal(st.RowGap, some(content.Y)).or(0), 0)
	colGap := math.Max(s.resolveVal(st.ColumnGap, some(content.X)).or(0), 0)

	rows := s.buildTracks(st.GridTemplateRows, st.GridAutoRows, rowCount, some(content.Y))
	cols := s.buildTracks(st.GridTemplateColumns, st.GridAutoColumns, colCount, some(content.X))

	s.sizeContentTracks(&rows, items, axisVertical, content.X, content.Y)
	s.sizeContentTracks(&cols, items, axisHorizontal, content.X, content.Y)

	distributeFr(&rows, content.Y, rowGap)
	distributeFr(&cols, content.X, colGap)

	rowPos := trackPositions(rows.size, rowGap)
	colPos := trackPositions(cols.size, colGap)

	for i := range items {
		it := &items[i]
		cst := &s.nodes[it.idx].style

		cell := core.Rect{
			Min: core.Vec2{X: colPos[it.col], Y: rowPos[it.row]},
			Max: core.Vec2{
				X: colPos[it.col+it.colSpan-1] + cols.size[it.col+it.colSpan-1],
				Y: rowPos[it.row+it.rowSpan-1] + rows.size[it.row+it.rowSpan-1],
			},
		}
		avail := core.Vec2{
			X: math.Max(cell.Width()-it.margins.horizontal(), 0),
			Y: math.Max(cell.Height()-it.margins.vertical(), 0),
		}

		justify := cst.JustifySelf.Resolve(st.JustifyItems)
		align := cst.AlignSelf.Resolve(st.AlignItems)

		w := s.gridItemAxis(it.idx, axisHorizontal, avail, justify, content)
		h := s.gridItemAxis(it.idx, axisVertical, avail, align, content)
		if cst.AspectRatio > 0 {
			if cst.Size.Width.IsAuto() && !cst.Size.Height.IsAuto() {
				w = s.clampAxis(it.idx, axisHorizontal,
					aspectDerived(cst.AspectRatio, h, axisVertical).or(w), some(content.X))
			} else if cst.Size.Height.IsAuto() && !cst.Size.Width.IsAuto() {
				h = s.clampAxis(it.idx, axisVertical,
					aspectDerived(cst.AspectRatio, w, axisHorizontal).or(h), some(content.Y))
			}
		}

		pos := core.Vec2{
			X: cell.Min.X + it.margins.left + alignOffset(justify, avail.X, w),
			Y: cell.Min.Y + it.margins.top + alignOffset(align, avail.Y, h),
		}

		s.nodes[it.idx].layout = LayoutOutput{
			Position: origin.Add(pos),
			Size:     core.Vec2{X: w, Y: h},
		}
	}
}

// gridItemAxis resolves an item's size on one axis: explicit style size wins,
// stretch fills the cell, otherwise content sizes the item
func (s *Surface) gridItemAxis(idx int, a axis, avail core.Vec2, align component.AlignItems, content core.Vec2) float64 {
	basis := some(mainOf(content, a))
	if v := s.styleSize(idx, a, basis); v.valid {
		return s.clampAxis(idx, a, v.value, basis)
	}
	if align == component.ItemsStretch {
		return s.clampAxis(idx, a, mainOf(avail, a), basis)
	}
	measured := s.measureContent(idx, none(), none(), avail.X, avail.Y)
	return s.clampAxis(idx, a, math.Min(mainOf(measured, a), mainOf(avail, a)), basis)
}

// placeGridItems assigns each item a track area: fully explicit placements
// land first, then the auto-flow cursor fills the first free area in flow
// order. Overlapping explicit placements stack (last writer shares the area)
func (s *Surface) placeGridItems(idx int, flow []int) []gridItem {
	st := &s.nodes[idx].style
	explicitRows := max(len(st.GridTemplateRows), 1)
	explicitCols := max(len(st.GridTemplateColumns), 1)

	items := make([]gridItem, 0, len(flow))
	for _, cIdx := range flow {
		cst := &s.nodes[cIdx].style
		it := gridItem{
			idx:     cIdx,
			row:     cst.GridRow.Start - 1,
			col:     cst.GridColumn.Start - 1,
			rowSpan: cst.GridRow.SpanOf(),
			colSpan: cst.GridColumn.SpanOf(),
		}
		it.margins = s.resolveEdges(cst.Margin, none(), none())
		items = append(items, it)
	}

	occupied := make(map[[2]int]bool)
	mark := func(it *gridItem) {
		for r := it.row; r < it.row+it.rowSpan; r++ {
			for c := it.col; c < it.col+it.colSpan; c++ {
				occupied[[2]int{r, c}] = true
			}
		}
	}
	fits := func(row, col, rowSpan, colSpan int) bool {
		for r := row; r < row+rowSpan; r++ {
			for c := col; c < col+colSpan; c++ {
				if occupied[[2]int{r, c}] {
					return false
				}
			}
		}
		return true
	}

	// Explicit placements first
	for i := range items {
		if items[i].row >= 0 && items[i].col >= 0 {
			mark(&items[i])
		}
	}

	// Items pinned on one axis scan only the free axis
	for i := range items {
		it := &items[i]
		switch {
		case it.row >= 0 && it.col >= 0:
			continue
		case it.col >= 0:
			row := 0
			for !fits(row, it.col, it.rowSpan, it.colSpan) {
				row++
			}
			it.row = row
			mark(it)
		case it.row >= 0:
			col := 0
			for !fits(it.row, col, it.rowSpan, it.colSpan) {
				col++
			}
			it.col = col
			mark(it)
		}
	}

	// Auto-flow cursor: row flow scans columns within the explicit column
	// count and grows rows; column flow is the transpose
	cursorRow, cursorCol := 0, 0
	for i := range items {
		it := &items[i]
		if it.row >= 0 {
			continue
		}

		if st.GridAutoFlow == component.FlowColumn {
			row, col := cursorRow, cursorCol
			for {
				if row+it.rowSpan > explicitRows && row > 0 {
					row = 0
					col++
					continue
				}
				if fits(row, col, it.rowSpan, it.colSpan) {
					break
				}
				row++
			}
			it.row, it.col = row, col
			cursorRow, cursorCol = row+it.rowSpan, col
			if cursorRow >= explicitRows {
				cursorRow, cursorCol = 0, col+1
			}
		} else {
			row, col := cursorRow, cursorCol
			for {
				if col+it.colSpan > explicitCols && col > 0 {
					col = 0
					row++
					continue
				}
				if fits(row, col, it.rowSpan, it.colSpan) {
					break
				}
				col++
			}
			it.row, it.col = row, col
			cursorRow, cursorCol = row, col+it.colSpan
			if cursorCol >= explicitCols {
				cursorRow, cursorCol = row+1, 0
			}
		}
		mark(it)
	}
	return items
}

// gridExtents returns the track counts implied by templates and placements
func gridExtents(st *component.StyleComponent, items []gridItem) (rows, cols int) {
	rows = max(len(st.GridTemplateRows), 1)
	cols = max(len(st.GridTemplateColumns), 1)
	for i := range items {
		rows = max(rows, items[i].row+items[i].rowSpan)
		cols = max(cols, items[i].col+items[i].colSpan)
	}
	return rows, cols
}

// buildTracks materializes count tracks: template entries, then implicit
// tracks cycling through the auto list (auto-sized when the list is empty)
func (s *Surface) buildTracks(template, auto []component.GridTrack, count int, basis optFloat) gridTracks {
	t := gridTracks{
		defs:  make([]component.GridTrack, count),
		size:  make([]float64, count),
		fixed: make([]bool, count),
	}
	for i := 0; i < count; i++ {
		switch {
		case i < len(template):
			t.defs[i] = template[i]
		case len(auto) > 0:
			t.defs[i] = auto[(i-len(template))%len(auto)]
		default:
			t.defs[i] = component.GridTrack{Kind: component.TrackAuto}
		}
		if v := s.resolveTrack(t.defs[i], basis); v.valid {
			t.size[i] = math.Max(v.value, 0)
			t.fixed[i] = true
		}
	}
	return t
}

// sizeContentTracks grows auto tracks to the largest span-1 item they hold
// Spanning items do not grow auto tracks (simplification: spans distribute
// over fr and fixed tracks only)
func (s *Surface) sizeContentTracks(t *gridTracks, items []gridItem, a axis, availW, availH float64) {
	for i := range items {
		it := &items[i]
		var track, span int
		if a == axisVertical {
			track, span = it.row, it.rowSpan
		} else {
			track, span = it.col, it.colSpan
		}
		if span != 1 || track >= len(t.defs) {
			continue
		}
		if t.fixed[track] || t.defs[track].Kind != component.TrackAuto {
			continue
		}
		size := s.measureContent(it.idx, none(), none(), availW, availH)
		outer := mainOf(size, a) + it.margins.main(a)
		t.size[track] = math.Max(t.size[track], outer)
	}
}

// distributeFr shares the free space after fixed/auto tracks and gaps among
// fr tracks proportionally; negative free space leaves fr tracks at zero
func distributeFr(t *gridTracks, containerSize, gap float64) {
	var used, frTotal float64
	for i := range t.defs {
		if t.defs[i].Kind == component.TrackFr {
			frTotal += math.Max(t.defs[i].Value, 0)
		} else {
			used += t.size[i]
		}
	}
	if len(t.size) > 1 {
		used += gap * float64(len(t.size)-1)
	}
	if frTotal <= 0 {
		return
	}
	free := math.Max(containerSize-used, 0)
	for i := range t.defs {
		if t.defs[i].Kind == component.TrackFr {
			t.size[i] = free * math.Max(t.defs[i].Value, 0) / frTotal
		}
	}
}

// trackPositions returns the start offset of each track
func trackPositions(sizes []float64, gap float64) []float64 {
	pos := make([]float64, len(sizes))
	var cursor float64
	for i, sz := range sizes {
		pos[i] = cursor
		cursor += sz + gap
	}
	return pos
}

// measureGridContent measures a grid container's content box in an intrinsic
// context: fixed px tracks plus content-sized auto and fr tracks, plus gaps
// (fr has no free space to take here and degrades to content sizing)
func (s *Surface) measureGridContent(idx int, availW, availH float64) core.Vec2 {
	n := &s.nodes[idx]
	st := &n.style

	var flow []int
	for _, cIdx := range n.children {
		cst := &s.nodes[cIdx].style
		if cst.Display == component.DisplayNone || cst.Position == component.PositionAbsolute {
			continue
		}
		flow = append(flow, cIdx)
	}
	if len(flow) == 0 {
		return core.Vec2{}
	}

	items := s.placeGridItems(idx, flow)
	rowCount, colCount := gridExtents(st, items)

	rows := s.buildTracks(st.GridTemplateRows, st.GridAutoRows, rowCount, none())
	cols := s.buildTracks(st.GridTemplateColumns, st.GridAutoColumns, colCount, none())

	measureAxis := func(t *gridTracks, a axis) {
		for i := range t.defs {
			if t.fixed[i] {
				continue
			}
			for j := range items {
				it := &items[j]
				var track, span int
				if a == axisVertical {
					track, span = it.row, it.rowSpan
				} else {
					track, span = it.col, it.colSpan
				}
				if track != i || span != 1 {
					continue
				}
				size := s.measureContent(it.idx, none(), none(), availW, availH)
				outer := mainOf(size, a) + it.margins.main(a)
				t.size[i] = math.Max(t.size[i], outer)
			}
		}
	}
	measureAxis(&rows, axisVertical)
	measureAxis(&cols, axisHorizontal)

	rowGap := math.Max(s.resolveVal(st.RowGap, none()).or(0), 0)
	colGap := math.Max(s.resolveVal(st.ColumnGap, none()).or(0), 0)

	var h, w float64
	for _, sz := range rows.size {
		h += sz
	}
	for _, sz := range cols.size {
		w += sz
	}
	if len(rows.size) > 1 {
		h += rowGap * float64(len(rows.size)-1)
	}
	if len(cols.size) > 1 {
		w += colGap * float64(len(cols.size)-1)
	}
	return core.Vec2{X: w, Y: h}
}
