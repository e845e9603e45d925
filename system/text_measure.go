package system

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
	"github.com/lixenwraith/flexui/parameter"
)

// TextMeasureSystem derives intrinsic sizes for text leaves
//
// Runs before layout: every entity with text gets a measure func reflecting
// its current content, so the same frame's layout already sees the new
// size. Widths are terminal cell widths (wide glyphs count as two cells)
type TextMeasureSystem struct {
	engine.SystemBase

	// installed tracks the content a measure func was built for, so
	// unchanged text skips the rebuild
	installed map[core.Entity]textKey
}

type textKey struct {
	content string
	wrap    bool
}

// NewTextMeasureSystem creates the text measurement system
func NewTextMeasureSystem(world *engine.World) *TextMeasureSystem {
	return &TextMeasureSystem{
		SystemBase: engine.NewSystemBase(world),
		installed:  make(map[core.Entity]textKey),
	}
}

func (s *TextMeasureSystem) Name() string {
	return "text-measure"
}

func (s *TextMeasureSystem) Priority() int {
	return parameter.PriorityTextMeasure
}

func (s *TextMeasureSystem) Update() {
	seen := make(map[core.Entity]struct{}, s.Component.Text.Count())

	for _, e := range s.Component.Text.Entities() {
		text, _ := s.Component.Text.Get(e)
		seen[e] = struct{}{}

		key := textKey{content: text.Content, wrap: text.Wrap}
		if prev, ok := s.installed[e]; ok && prev == key {
			continue
		}
		s.installed[e] = key
		s.Component.ContentSize.Set(e, component.ContentSizeComponent{
			Measure: textMeasure(text.Content, text.Wrap),
		})
	}

	// Text removed: drop the stale measure func
	for e := range s.installed {
		if _, ok := seen[e]; !ok {
			delete(s.installed, e)
			s.Component.ContentSize.Remove(e)
		}
	}
}

// textMeasure builds the measure func for one content snapshot
func textMeasure(content string, wrap bool) component.MeasureFunc {
	lines := strings.Split(content, "\n")

	return func(in component.MeasureInput) core.Vec2 {
		limit := math.Inf(1)
		if in.HasKnownWidth {
			limit = in.KnownWidth
		} else if !math.IsNaN(in.AvailableWidth) {
			limit = in.AvailableWidth
		}

		var width float64
		height := 0
		for _, line := range lines {
			w := float64(runewidth.StringWidth(line))
			if wrap && w > limit && limit >= 1 {
				rows := wrapLine(line, int(limit))
				for _, row := range rows {
					width = math.Max(width, float64(runewidth.StringWidth(row)))
				}
				height += len(rows)
			} else {
				width = math.Max(width, w)
				height++
			}
		}
		return core.Vec2{X: width, Y: float64(height)}
	}
}

// wrapLine breaks a line at word boundaries, falling back to hard breaks
// for words wider than the limit
func wrapLine(line string, limit int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var rows []string
	var current strings.Builder
	currentWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)

		if currentWidth > 0 && currentWidth+1+w > limit {
			rows = append(rows, current.String())
			current.Reset()
			currentWidth = 0
		}
		if w > limit {
			// Hard-break an oversized word cell by cell
			for _, part := range hardBreak(word, limit) {
				if currentWidth > 0 {
					rows = append(rows, current.String())
					current.Reset()
					currentWidth = 0
				}
				current.WriteString(part)
				currentWidth = runewidth.StringWidth(part)
				if currentWidth == limit {
					rows = append(rows, current.String())
					current.Reset()
					currentWidth = 0
				}
			}
			continue
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += w
	}
	if currentWidth > 0 {
		rows = append(rows, current.String())
	}
	return rows
}

// hardBreak splits a word into chunks no wider than limit cells
func hardBreak(word string, limit int) []string {
	var parts []string
	var current strings.Builder
	width := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if width+rw > limit && width > 0 {
			parts = append(parts, current.String())
			current.Reset()
			width = 0
		}
		current.WriteRune(r)
		width += rw
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
