// Package input samples terminal events into frame-coherent pointer state.
// The terminal event loop runs on its own goroutine; the sampler buffers
// raw samples until InputSystem drains them at the start of a frame, so
// systems never observe a half-applied input burst.
package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flexui/core"
)

// SampleKind tags one buffered input sample
type SampleKind uint8

const (
	SampleMotion SampleKind = iota
	SampleButton
	SampleLeave
	SampleResize
)

// Sample is one raw input observation
type Sample struct {
	Kind SampleKind

	// Motion
	X, Y float64

	// Button
	Pressed bool

	// Resize
	Viewport      core.ViewportID
	Width, Height int
}

// PointerSampler buffers input samples between frames
type PointerSampler struct {
	mu      sync.Mutex
	pending []Sample

	lastButtons tcell.ButtonMask
}

// NewPointerSampler creates an empty sampler
func NewPointerSampler() *PointerSampler {
	return &PointerSampler{}
}

// Motion records a pointer position sample
func (p *PointerSampler) Motion(x, y float64) {
	p.push(Sample{Kind: SampleMotion, X: x, Y: y})
}

// Button records a primary-button edge
func (p *PointerSampler) Button(pressed bool) {
	p.push(Sample{Kind: SampleButton, Pressed: pressed})
}

// Leave records the pointer leaving the window
func (p *PointerSampler) Leave() {
	p.push(Sample{Kind: SampleLeave})
}

// Resize records a viewport size change
func (p *PointerSampler) Resize(id core.ViewportID, width, height int) {
	p.push(Sample{Kind: SampleResize, Viewport: id, Width: width, Height: height})
}

func (p *PointerSampler) push(s Sample) {
	p.mu.Lock()
	p.pending = append(p.pending, s)
	p.mu.Unlock()
}

// Drain moves buffered samples into buf and returns it
// Called once per frame by InputSystem; sample order is preserved
func (p *PointerSampler) Drain(buf []Sample) []Sample {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf = append(buf, p.pending...)
	p.pending = p.pending[:0]
	return buf
}

// HandleEvent translates a tcell event into samples
// Call from the terminal polling goroutine. Returns true when the event was
// consumed
func (p *PointerSampler) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventMouse:
		x, y := tev.Position()
		p.Motion(float64(x), float64(y))

		buttons := tev.Buttons() & tcell.ButtonMask(tcell.Button1)
		if buttons != p.lastButtons {
			p.Button(buttons != 0)
			p.lastButtons = buttons
		}
		return true
	case *tcell.EventResize:
		w, h := tev.Size()
		p.Resize(core.DefaultViewport, w, h)
		return true
	}
	return false
}
