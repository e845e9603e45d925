package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flexui/core"
	"github.com/lixenwraith/flexui/event"
	"github.com/lixenwraith/flexui/status"
)

// FrameScheduler drives the UI pipeline on a fixed tick
// Each frame: advance the frame counter, update TimeResource, run an optional
// pre-update hook (input sampling), run all systems under the world update
// lock, then dispatch queued events to registered handlers.
// A frame either completes fully or the process is torn down — there is no
// partial-frame recovery
type FrameScheduler struct {
	world   *World
	timeRes *TimeResource

	tickInterval time.Duration
	lastTick     time.Time

	// PreUpdate runs before systems each frame, outside the world lock
	// Used by the terminal loop to fold sampled input into PointerResource
	PreUpdate func()

	// PostUpdate runs after event dispatch each frame (rendering hook)
	PostUpdate func()

	eventRouter *event.Router

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statFrames *atomic.Int64
}

// NewFrameScheduler creates a scheduler for the given world and tick interval
func NewFrameScheduler(world *World, tickInterval time.Duration) *FrameScheduler {
	reg := MustGetResource[*status.Registry](world.Resources)

	fs := &FrameScheduler{
		world:        world,
		timeRes:      MustGetResource[*TimeResource](world.Resources),
		tickInterval: tickInterval,
		lastTick:     time.Now(),
		eventRouter:  event.NewRouter(world.EventQueue()),
		stopChan:     make(chan struct{}),
		statFrames:   reg.Ints.Get("engine.frames"),
	}

	// Systems that implement event.Handler receive routed events
	for _, sys := range world.Systems() {
		if h, ok := sys.(event.Handler); ok {
			fs.eventRouter.Register(h)
		}
	}

	return fs
}

// RegisterEventHandler adds an event handler that is not a system
func (fs *FrameScheduler) RegisterEventHandler(handler event.Handler) {
	fs.eventRouter.Register(handler)
}

// Step runs exactly one frame synchronously
// Exposed for tests and for applications that own the outer loop
func (fs *FrameScheduler) Step() {
	now := time.Now()
	delta := now.Sub(fs.lastTick)
	fs.lastTick = now

	frame := fs.world.AdvanceFrame()
	fs.timeRes.Update(now, delta, frame)
	fs.statFrames.Add(1)

	if fs.PreUpdate != nil {
		fs.PreUpdate()
	}

	fs.world.Update()
	fs.eventRouter.DispatchAll()

	if fs.PostUpdate != nil {
		fs.PostUpdate()
	}
}

// Start launches the tick loop in its own goroutine
func (fs *FrameScheduler) Start() {
	if !fs.running.CompareAndSwap(false, true) {
		return
	}

	fs.wg.Add(1)
	core.Go(func() {
		defer fs.wg.Done()

		ticker := time.NewTicker(fs.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-fs.stopChan:
				return
			case <-ticker.C:
				fs.Step()
			}
		}
	})
}

// Stop halts the tick loop; safe to call more than once
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		close(fs.stopChan)
	})
	fs.wg.Wait()
	fs.running.Store(false)
}
