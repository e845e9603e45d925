package layout

import (
	"math"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
)

// flexItem is the working state for one in-flow child of a flex container
type flexItem struct {
	idx     int
	margins edges

	// basis is the clamped hypothetical main size (border box)
	basis float64
	// target is the post-flex main size
	target float64
	grow   float64
	shrink float64
	frozen bool

	// cross sizing
	cross         float64
	crossDefinite bool
	stretch       bool
	align         component.AlignItems
}

func (it *flexItem) outerMain(a axis) float64 {
	return it.target + it.margins.main(a)
}

func (it *flexItem) outerCross(a axis) float64 {
	return it.cross + it.margins.cross(a)
}

// flexLayout implements the flexbox algorithm for one container:
// collect items in tree order, resolve hypothetical bases, break lines,
// resolve flexible lengths with a freeze loop, size the cross axis, then
// distribute lines (align-content) and items (justify-content, align-items)
func (s *Surface) flexLayout(idx int, content, origin core.Vec2, flow []int) {
	st := &s.nodes[idx].style

	main := axisVertical
	if st.FlexDirection.IsRow() {
		main = axisHorizontal
	}
	cross := crossAxis(main)

	containerMain := mainOf(content, main)
	containerCross := mainOf(content, cross)
	mainGap := s.mainGap(st, main, some(containerMain))
	crossGap := s.crossGap(st, main, some(containerCross))

	items := make([]flexItem, 0, len(flow))
	for _, cIdx := range flow {
		cst := &s.nodes[cIdx].style
		margins := s.resolveEdges(cst.Margin, some(content.X), some(content.Y))

		it := flexItem{
			idx:     cIdx,
			margins: margins,
			grow:    cst.FlexGrow,
			shrink:  cst.FlexShrink,
			align:   cst.AlignSelf.Resolve(st.AlignItems),
		}
		it.basis = s.flexBasisOf(cIdx, main, some(containerMain), content.X, content.Y)
		it.target = it.basis
		it.stretch = it.align == component.ItemsStretch

		// Hypothetical cross size
		if cv := s.styleSize(cIdx, cross, some(containerCross)); cv.valid {
			it.cross = s.clampAxis(cIdx, cross, cv.value, some(containerCross))
			it.crossDefinite = true
			it.stretch = false
		} else if cst.AspectRatio > 0 {
			if dv := aspectDerived(cst.AspectRatio, it.basis, main); dv.valid {
				it.cross = s.clampAxis(cIdx, cross, dv.value, some(containerCross))
				it.crossDefinite = true
				it.stretch = false
			}
		}
		if !it.crossDefinite {
			known := vecKnown(it.basis, main)
			measured := s.measureContent(cIdx, known.w, known.h, content.X, content.Y)
			it.cross = s.clampAxis(cIdx, cross, mainOf(measured, cross), some(containerCross))
		}
		items = append(items, it)
	}

	lines := breakLines(items, st.FlexWrap != component.NoWrap, main, containerMain, mainGap)
	if st.FlexWrap == component.WrapReverse {
		// Cross-axis line order flips; within-line order is unchanged
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	for li := range lines {
		s.resolveFlexibleLengths(lines[li], main, containerMain, mainGap, some(containerMain))
	}

	// Line cross sizes
	lineCross := make([]float64, len(lines))
	var totalCross float64
	for li, line := range lines {
		if len(lines) == 1 && st.FlexWrap == component.NoWrap {
			// Single-line container: the line fills the cross axis
			lineCross[li] = containerCross
		} else {
			var m float64
			for i := range line {
				m = math.Max(m, line[i].outerCross(main))
			}
			lineCross[li] = m
		}
		totalCross += lineCross[li]
	}
	if len(lines) > 1 {
		totalCross += crossGap * float64(len(lines)-1)
	}

	// align-content distributes free cross space between lines
	freeCross := containerCross - totalCross
	lineOffset, lineSpacing := alignContentOffsets(st.AlignContent, freeCross, len(lines))
	if st.AlignContent == component.ContentStretch && freeCross > 0 && len(lines) > 0 {
		share := freeCross / float64(len(lines))
		for li := range lineCross {
			lineCross[li] += share
		}
	}

	// Position pass
	crossPos := lineOffset
	for li, line := range lines {
		// Final cross sizes: stretch items fill the line
		for i := range line {
			it := &line[i]
			if it.stretch {
				it.cross = s.clampAxis(it.idx, cross,
					math.Max(lineCross[li]-it.margins.cross(main), 0), some(containerCross))
			}
		}

		var used float64
		for i := range line {
			used += line[i].outerMain(main)
		}
		if len(line) > 1 {
			used += mainGap * float64(len(line)-1)
		}
		freeMain := containerMain - used
		offset, spacing := justifyOffsets(st.JustifyContent, freeMain, len(line))

		order := make([]int, len(line))
		for i := range order {
			order[i] = i
		}
		if st.FlexDirection.IsReverse() {
			for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
				order[i], order[j] = order[j], order[i]
			}
		}

		pos := offset
		for _, oi := range order {
			it := &line[oi]
			mainPos := pos + it.margins.mainStart(main)
			crossStart := crossPos + it.margins.crossStart(main) +
				alignOffset(it.align, lineCross[li], it.outerCross(main))

			s.nodes[it.idx].layout = LayoutOutput{
				Position: origin.Add(vecOf(mainPos, crossStart, main)),
				Size:     vecOf(it.target, it.cross, main),
			}
			pos += it.outerMain(main) + mainGap + spacing
		}
		crossPos += lineCross[li] + crossGap + lineSpacing
	}
}

// breakLines splits items into flex lines when wrapping is enabled
func breakLines(items []flexItem, wrap bool, main axis, containerMain, gap float64) [][]flexItem {
	if len(items) == 0 {
		return nil
	}
	if !wrap {
		return [][]flexItem{items}
	}

	var lines [][]flexItem
	var current []flexItem
	var used float64
	for _, it := range items {
		outer := it.basis + it.margins.main(main)
		needed := used + outer
		if len(current) > 0 {
			needed += gap
		}
		if len(current) > 0 && needed > containerMain {
			lines = append(lines, current)
			current = nil
			used = 0
		}
		if len(current) > 0 {
			used += gap
		}
		current = append(current, it)
		used += outer
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// resolveFlexibleLengths distributes free main space per the flexbox
// grow/shrink model, iterating until no min/max violation unfreezes space
func (s *Surface) resolveFlexibleLengths(line []flexItem, main axis, containerMain, gap float64, basis optFloat) {
	if len(line) == 0 {
		return
	}

	usedBasis := gap * float64(len(line)-1)
	for i := range line {
		line[i].target = line[i].basis
		line[i].frozen = false
		usedBasis += line[i].basis + line[i].margins.main(main)
	}
	free := containerMain - usedBasis

	growing := free > 0

	for iter := 0; iter < len(line)+1; iter++ {
		var totalFactor float64
		for i := range line {
			if line[i].frozen {
				continue
			}
			if growing {
				totalFactor += line[i].grow
			} else {
				// Shrink scaled by basis so larger items give up more
				totalFactor += line[i].shrink * line[i].basis
			}
		}
		if totalFactor <= 0 || free == 0 {
			break
		}

		remaining := free
		violated := false
		for i := range line {
			it := &line[i]
			if it.frozen {
				continue
			}
			var share float64
			if growing {
				// Grow sums below 1 consume only that fraction of free space
				share = remaining * it.grow / math.Max(totalFactor, 1)
			} else {
				share = remaining * (it.shrink * it.basis / totalFactor)
			}
			proposed := it.basis + share
			clamped := s.clampAxis(it.idx, main, proposed, basis)
			if clamped != proposed {
				// Clamp hit: freeze at the bound and redistribute the rest
				it.target = clamped
				it.frozen = true
				free -= clamped - it.basis
				violated = true
			} else {
				it.target = proposed
			}
		}
		if !violated {
			// Distribute once more over only unfrozen items with final free
			var finalFactor float64
			for i := range line {
				if line[i].frozen {
					continue
				}
				if growing {
					finalFactor += line[i].grow
				} else {
					finalFactor += line[i].shrink * line[i].basis
				}
			}
			if finalFactor > 0 {
				for i := range line {
					it := &line[i]
					if it.frozen {
						continue
					}
					var share float64
					if growing {
						share = free * it.grow / math.Max(finalFactor, 1)
					} else {
						share = free * (it.shrink * it.basis / finalFactor)
					}
					it.target = s.clampAxis(it.idx, main, it.basis+share, basis)
				}
			}
			break
		}
	}

	for i := range line {
		line[i].target = math.Max(line[i].target, 0)
	}
}

// justifyOffsets returns the initial offset and inter-item spacing for a
// justify-content policy. Negative free space degrades gracefully:
// space-between behaves as start, space-around/evenly as center
func justifyOffsets(j component.JustifyContent, free float64, n int) (offset, spacing float64) {
	if n == 0 {
		return 0, 0
	}
	if free < 0 {
		switch j {
		case component.JustifyEnd:
			return free, 0
		case component.JustifyCenter, component.JustifySpaceAround, component.JustifySpaceEvenly:
			return free / 2, 0
		default:
			return 0, 0
		}
	}
	switch j {
	case component.JustifyEnd:
		return free, 0
	case component.JustifyCenter:
		return free / 2, 0
	case component.JustifySpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case component.JustifySpaceAround:
		spacing = free / float64(n)
		return spacing / 2, spacing
	case component.JustifySpaceEvenly:
		spacing = free / float64(n+1)
		return spacing, spacing
	default:
		return 0, 0
	}
}

// alignContentOffsets returns the initial offset and inter-line spacing for
// an align-content policy
func alignContentOffsets(a component.AlignContent, free float64, n int) (offset, spacing float64) {
	if n == 0 || free <= 0 {
		return 0, 0
	}
	switch a {
	case component.ContentEnd:
		return free, 0
	case component.ContentCenter:
		return free / 2, 0
	case component.ContentSpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case component.ContentSpaceAround:
		spacing = free / float64(n)
		return spacing / 2, spacing
	case component.ContentSpaceEvenly:
		spacing = free / float64(n+1)
		return spacing, spacing
	default:
		// start and stretch anchor at the line start
		return 0, 0
	}
}

// alignOffset returns the cross-axis offset of an item within its line
func alignOffset(a component.AlignItems, lineCross, itemOuterCross float64) float64 {
	switch a {
	case component.ItemsEnd:
		return lineCross - itemOuterCross
	case component.ItemsCenter:
		return (lineCross - itemOuterCross) / 2
	default:
		// start, stretch, baseline (baseline degrades to start in cell grids)
		return 0
	}
}

// vecKnown wraps a definite main-axis value as known dimensions
type knownDims struct {
	w, h optFloat
}

func vecKnown(main float64, a axis) knownDims {
	if a == axisHorizontal {
		return knownDims{w: some(main), h: none()}
	}
	return knownDims{w: none(), h: some(main)}
}
