package event

import (
	"sync/atomic"

	"github.com/lixenwraith/flexui/parameter"
)

// Event is a single pipeline event with its origin frame
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}

// EventQueue is a lock-free MPSC ring buffer for pipeline events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewEventQueue() *EventQueue {
	eq := &EventQueue{}
	eq.head.Store(0)
	eq.tail.Store(0)
	return eq
}

// Push adds an event using lock-free CAS with published flags
// Safe for concurrent producers. O(1) amortized
func (eq *EventQueue) Push(event Event) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume drains all published events in FIFO order
// Must only be called from the single consumer goroutine
func (eq *EventQueue) Consume() []Event {
	head := eq.head.Load()
	tail := eq.tail.Load()

	if head == tail {
		return nil
	}

	count := tail - head
	if count > parameter.EventQueueSize {
		count = parameter.EventQueueSize
		head = tail - parameter.EventQueueSize
	}

	out := make([]Event, 0, count)
	for i := head; i < tail; i++ {
		idx := i & parameter.EventBufferMask
		if !eq.published[idx].Load() {
			// Producer still writing this slot; stop at the gap
			break
		}
		out = append(out, eq.events[idx])
		eq.published[idx].Store(false)
	}

	eq.head.Store(head + uint64(len(out)))
	return out
}

// Len returns the number of pending events (approximate under concurrency)
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail < head {
		return 0
	}
	n := tail - head
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}
