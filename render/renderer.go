// Package render draws the resolved UI stack onto a terminal screen.
// Paint order is exactly the UiStackResource order: backgrounds, borders and
// text per node, outlines on top of the node that owns them. The renderer
// reads pipeline output only — it never feeds anything back into layout.
package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/flexui/component"
	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/engine"
)

// HoverTint is the blend factor applied to hovered backgrounds
const HoverTint = 0.18

// PressTint is the blend factor applied to pressed backgrounds
const PressTint = 0.30

// Renderer paints one viewport's UI stack to a tcell screen
type Renderer struct {
	screen   tcell.Screen
	world    *engine.World
	comp     engine.ComponentStore
	viewport core.ViewportID
}

// NewRenderer creates a renderer bound to a screen and viewport
func NewRenderer(screen tcell.Screen, world *engine.World, viewport core.ViewportID) *Renderer {
	return &Renderer{
		screen:   screen,
		world:    world,
		comp:     world.Components,
		viewport: viewport,
	}
}

// Draw paints the current frame's stack, back to front
// The caller owns Clear and Show; Draw only writes cells
func (r *Renderer) Draw() {
	stack := engine.MustGetResource[*engine.UiStackResource](r.world.Resources)

	for _, e := range stack.Entities {
		if rv, ok := r.comp.ResolvedViewport.Get(e); ok && rv.Viewport != r.viewport {
			continue
		}
		r.drawNode(e)
	}
	for _, e := range stack.Entities {
		if rv, ok := r.comp.ResolvedViewport.Get(e); ok && rv.Viewport != r.viewport {
			continue
		}
		r.drawOutline(e)
	}
}

func (r *Renderer) drawNode(e core.Entity) {
	node, ok := r.comp.Node.Get(e)
	if !ok || node.Size.X <= 0 || node.Size.Y <= 0 {
		return
	}

	rect := node.Rect()
	visible := rect
	if clip, ok := r.comp.Clip.Get(e); ok {
		visible = visible.Intersect(clip.Rect)
	}
	if visible.IsEmpty() {
		return
	}

	visual, hasVisual := r.comp.Visual.Get(e)
	if hasVisual && visual.HasBackground {
		bg := r.interactionColor(e, visual.Background)
		r.fill(visible, bg)
		r.drawBorder(e, rect, visible, visual.BorderColor)
	}

	if text, ok := r.comp.Text.Get(e); ok {
		r.drawText(rect, visible, text)
	}
}

// interactionColor tints the background by the node's interaction state
func (r *Renderer) interactionColor(e core.Entity, bg core.RGB) core.RGB {
	inter, ok := r.comp.Interaction.Get(e)
	if !ok || inter.State == component.InteractionNone {
		return bg
	}

	c := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	switch inter.State {
	case component.InteractionHovered:
		c = c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, HoverTint)
	case component.InteractionPressed:
		c = c.BlendLab(colorful.Color{}, PressTint)
	}
	c = c.Clamped()
	return core.RGB{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255)}
}

func (r *Renderer) fill(rect core.Rect, bg core.RGB) {
	style := tcell.StyleDefault.Background(toTcell(bg))
	x0, y0, x1, y1 := cellBounds(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBorder paints the style border edges inside the border box
func (r *Renderer) drawBorder(e core.Entity, rect, visible core.Rect, color core.RGB) {
	style, ok := r.comp.Style.Get(e)
	if !ok {
		return
	}
	viewport := engine.MustGetResource[*engine.ViewportResource](r.world.Resources).Size(r.viewport)

	left := style.Border.Left.ResolveOr(rect.Width(), viewport, 0)
	right := style.Border.Right.ResolveOr(rect.Width(), viewport, 0)
	top := style.Border.Top.ResolveOr(rect.Height(), viewport, 0)
	bottom := style.Border.Bottom.ResolveOr(rect.Height(), viewport, 0)
	if left <= 0 && right <= 0 && top <= 0 && bottom <= 0 {
		return
	}

	bg := toTcell(color)
	cellStyle := tcell.StyleDefault.Background(bg)
	if left > 0 {
		r.fillCells(core.Rect{Min: rect.Min, Max: core.Vec2{X: rect.Min.X + left, Y: rect.Max.Y}}.Intersect(visible), cellStyle)
	}
	if right > 0 {
		r.fillCells(core.Rect{Min: core.Vec2{X: rect.Max.X - right, Y: rect.Min.Y}, Max: rect.Max}.Intersect(visible), cellStyle)
	}
	if top > 0 {
		r.fillCells(core.Rect{Min: rect.Min, Max: core.Vec2{X: rect.Max.X, Y: rect.Min.Y + top}}.Intersect(visible), cellStyle)
	}
	if bottom > 0 {
		r.fillCells(core.Rect{Min: core.Vec2{X: rect.Min.X, Y: rect.Max.Y - bottom}, Max: rect.Max}.Intersect(visible), cellStyle)
	}
}

func (r *Renderer) fillCells(rect core.Rect, style tcell.Style) {
	if rect.IsEmpty() {
		return
	}
	x0, y0, x1, y1 := cellBounds(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText paints glyphs from the rect origin, clipped to the visible area
func (r *Renderer) drawText(rect, visible core.Rect, text component.TextComponent) {
	style := tcell.StyleDefault.Foreground(toTcell(text.Color))
	x0, y0, x1, y1 := cellBounds(visible)

	y := int(rect.Min.Y)
	for _, line := range splitLines(text.Content) {
		if y >= y1 {
			break
		}
		if y >= y0 {
			x := int(rect.Min.X)
			for _, ch := range line {
				w := runewidth.RuneWidth(ch)
				if x >= x1 {
					break
				}
				if x >= x0 && x+w <= x1 {
					r.screen.SetContent(x, y, ch, nil, style)
				}
				x += w
			}
		}
		y++
	}
}

// drawOutline paints the outline ring outside the border box
// Outlines escape the node's own clip but still clip to the screen
func (r *Renderer) drawOutline(e core.Entity) {
	outline, ok := r.comp.Outline.Get(e)
	if !ok {
		return
	}
	node, ok := r.comp.Node.Get(e)
	if !ok || node.OutlineWidth <= 0 {
		return
	}

	outer := node.OutlineRect()
	inner := node.Rect().Inflate(node.OutlineOffset)
	style := tcell.StyleDefault.Background(toTcell(outline.Color))

	x0, y0, x1, y1 := cellBounds(outer)
	ix0, iy0, ix1, iy1 := cellBounds(inner)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x >= ix0 && x < ix1 && y >= iy0 && y < iy1 {
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// cellBounds converts a float rect to half-open integer cell bounds
func cellBounds(rect core.Rect) (x0, y0, x1, y1 int) {
	return int(rect.Min.X), int(rect.Min.Y), int(rect.Max.X), int(rect.Max.Y)
}

func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	return append(lines, content[start:])
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
