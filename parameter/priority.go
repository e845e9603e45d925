package parameter

// System priorities, ascending = earlier in the frame
// The ordering encodes the pipeline's dependency contract:
//
//	input sampling -> focus resolution (focus reads this frame's input)
//	viewport targets -> text measurement -> layout -> transform propagation
//	stack rebuild (independent of layout geometry) -> outlines -> clipping
//	audio feedback last; rendering runs outside the world update
//
// StackSystem carries no data dependency on LayoutSystem output: it reads
// styles, z-indices and hierarchy while layout writes geometry. The priority
// scheduler serializes them anyway; the disjoint field access is the contract
// that would permit running them concurrently
const (
	PriorityInput          = 100
	PriorityFocus          = 200
	PriorityViewportTarget = 300
	PriorityTextMeasure    = 350
	PriorityLayout         = 400
	PriorityTransform      = 450
	PriorityStack          = 500
	PriorityOutline        = 550
	PriorityClip           = 600
	PriorityAudio          = 700
)
