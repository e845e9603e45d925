package parameter

// Event queue sizing; EventQueueSize must be a power of two
const (
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)

// Frame pacing defaults
const (
	// DefaultTickRate is frames per second when config does not override
	DefaultTickRate = 60

	// InitialStoreCapacity pre-sizes component store entity slices
	InitialStoreCapacity = 64
)
