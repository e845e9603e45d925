package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/event"
)

// TimeResource wraps frame timing for systems
// Updated by the FrameScheduler at the start of a frame
type TimeResource struct {
	// Now is the wall-clock time of the current frame
	Now time.Time

	// DeltaTime is the duration since the last frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called before systems run for the frame
func (tr *TimeResource) Update(now time.Time, delta time.Duration, frame int64) {
	tr.Now = now
	tr.DeltaTime = delta
	tr.FrameNumber = frame
}

// UiScaleResource is the multiplier applied to fixed (Px) style values
// Constructed once at startup, mutated in place between frames
type UiScaleResource struct {
	Scale float64
}

// Effective returns the scale clamped to a sane value (<=0 falls back to 1)
func (s *UiScaleResource) Effective() float64 {
	if s == nil || s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

// ViewportResource tracks the size of each render-target viewport
type ViewportResource struct {
	mu    sync.RWMutex
	sizes map[core.ViewportID]core.Vec2
}

// NewViewportResource creates the resource with the default viewport sized
func NewViewportResource(width, height int) *ViewportResource {
	vr := &ViewportResource{sizes: make(map[core.ViewportID]core.Vec2)}
	vr.Resize(core.DefaultViewport, width, height)
	return vr
}

// Resize records a viewport's size; non-positive dimensions clamp to zero
func (vr *ViewportResource) Resize(id core.ViewportID, width, height int) {
	vr.mu.Lock()
	defer vr.mu.Unlock()
	vr.sizes[id] = core.Vec2{X: float64(max(width, 0)), Y: float64(max(height, 0))}
}

// Size returns the size of a viewport; unknown viewports fall back to the
// default viewport's size
func (vr *ViewportResource) Size(id core.ViewportID) core.Vec2 {
	vr.mu.RLock()
	defer vr.mu.RUnlock()
	if size, ok := vr.sizes[id]; ok {
		return size
	}
	return vr.sizes[core.DefaultViewport]
}

// Rect returns the viewport bounds as a rect anchored at the origin
func (vr *ViewportResource) Rect(id core.ViewportID) core.Rect {
	size := vr.Size(id)
	return core.NewRect(0, 0, size.X, size.Y)
}

// PointerResource is the single logical pointer, sampled once per frame
// before FocusSystem runs. Edge flags are valid for exactly one frame
type PointerResource struct {
	// Position in viewport space (cells; fractional positions allowed)
	Position core.Vec2

	// Inside is false when the pointer has left the window: nothing can be
	// hovered this frame
	Inside bool

	// PrimaryDown is the level state of the primary button
	PrimaryDown bool

	// JustPressed / JustReleased are press edges for this frame
	JustPressed  bool
	JustReleased bool
}

// BeginFrame clears the one-frame edge flags
func (p *PointerResource) BeginFrame() {
	p.JustPressed = false
	p.JustReleased = false
}

// SetPosition moves the pointer and marks it inside the window
func (p *PointerResource) SetPosition(x, y float64) {
	p.Position = core.Vec2{X: x, Y: y}
	p.Inside = true
}

// Press records a primary-button down edge
func (p *PointerResource) Press() {
	if !p.PrimaryDown {
		p.JustPressed = true
	}
	p.PrimaryDown = true
}

// Release records a primary-button up edge
func (p *PointerResource) Release() {
	if p.PrimaryDown {
		p.JustReleased = true
	}
	p.PrimaryDown = false
}

// Leave marks the pointer as outside the window
func (p *PointerResource) Leave() {
	p.Inside = false
}

// UiStackResource is the frame's paint and hit-test order, back-to-front
// Rebuilt fully by StackSystem every frame — never patched incrementally,
// because any z-index change can reorder arbitrarily distant siblings.
// Constructed once at startup and mutated in place (frame-scoped state, not
// an ambient singleton)
type UiStackResource struct {
	Entities []core.Entity
}

// Reset clears the stack for rebuild, keeping capacity
func (s *UiStackResource) Reset() {
	s.Entities = s.Entities[:0]
}

// AudioPlayer defines the minimal audio interface used by systems
type AudioPlayer interface {
	Play(core.SoundCue) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
// A nil Player disables audio feedback without disabling the pipeline
type AudioResource struct {
	Player AudioPlayer
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}
