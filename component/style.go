package component

import (
	"github.com/lixenwraith/flexui/core"
)

// Display selects the layout model of a node
type Display uint8

const (
	// DisplayFlex lays out children with the flexbox model (default)
	DisplayFlex Display = iota
	// DisplayGrid lays out children with the grid model
	DisplayGrid
	// DisplayNone removes the node and its subtree from layout and paint
	DisplayNone
)

// PositionType controls flow participation
type PositionType uint8

const (
	// PositionRelative participates in flow, inset offsets the final position
	PositionRelative PositionType = iota
	// PositionAbsolute is removed from flow and positioned by inset against
	// the containing block
	PositionAbsolute
)

// OverflowAxis controls clipping on a single axis
type OverflowAxis uint8

const (
	OverflowVisible OverflowAxis = iota
	OverflowClip
)

// Overflow holds per-axis clipping behavior
type Overflow struct {
	X, Y OverflowAxis
}

// OverflowClipBoth clips content on both axes
func OverflowClipBoth() Overflow {
	return Overflow{X: OverflowClip, Y: OverflowClip}
}

// FlexDirection sets the main axis of a flex container
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

// IsRow reports whether the main axis is horizontal
func (d FlexDirection) IsRow() bool {
	return d == FlexRow || d == FlexRowReverse
}

// IsReverse reports whether main-axis order is reversed
func (d FlexDirection) IsReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// FlexWrap controls line breaking in a flex container
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// AlignItems sets default cross-axis alignment of flex/grid children
type AlignItems uint8

const (
	ItemsStretch AlignItems = iota
	ItemsStart
	ItemsEnd
	ItemsCenter
	// ItemsBaseline falls back to start alignment (no text baselines in cells)
	ItemsBaseline
)

// AlignSelf overrides AlignItems per child
type AlignSelf uint8

const (
	SelfAuto AlignSelf = iota
	SelfStretch
	SelfStart
	SelfEnd
	SelfCenter
)

// Resolve folds an AlignSelf override into the container default
func (s AlignSelf) Resolve(def AlignItems) AlignItems {
	switch s {
	case SelfStretch:
		return ItemsStretch
	case SelfStart:
		return ItemsStart
	case SelfEnd:
		return ItemsEnd
	case SelfCenter:
		return ItemsCenter
	default:
		return def
	}
}

// JustifyContent distributes free main-axis space
type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignContent distributes flex lines (or grid tracks) in the cross axis
type AlignContent uint8

const (
	ContentStart AlignContent = iota
	ContentEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
)

// GridTrackKind tags a grid track sizing function
type GridTrackKind uint8

const (
	// TrackAuto sizes the track to its largest item
	TrackAuto GridTrackKind = iota
	// TrackPx is a fixed track size in cells
	TrackPx
	// TrackPercent resolves against the grid container axis
	TrackPercent
	// TrackFr takes a fraction of the remaining free space
	TrackFr
)

// GridTrack is one entry of a grid template
type GridTrack struct {
	Kind  GridTrackKind
	Value float64
}

// Fr returns a fractional track
func Fr(v float64) GridTrack { return GridTrack{Kind: TrackFr, Value: v} }

// TrackPxOf returns a fixed track
func TrackPxOf(v float64) GridTrack { return GridTrack{Kind: TrackPx, Value: v} }

// GridAutoFlow selects the auto-placement direction
type GridAutoFlow uint8

const (
	FlowRow GridAutoFlow = iota
	FlowColumn
)

// GridPlacement places an item on a grid axis
// Start is 1-based; 0 means auto. Span of 0 means 1
type GridPlacement struct {
	Start int
	Span  int
}

// SpanOf returns the effective span (minimum 1)
func (p GridPlacement) SpanOf() int {
	if p.Span < 1 {
		return 1
	}
	return p.Span
}

// Size pairs width and height style lengths
type Size struct {
	Width, Height core.Val
}

// SizeAuto returns an automatic size on both axes
func SizeAuto() Size {
	return Size{Width: core.Auto(), Height: core.Auto()}
}

// SizeAll returns the same value on both axes
func SizeAll(v core.Val) Size {
	return Size{Width: v, Height: v}
}

// StyleComponent is the full per-node layout style record
// External code mutates style fields; the layout pipeline only reads them.
// Invalid or contradictory combinations are clamped during mirroring, never
// rejected
type StyleComponent struct {
	Display  Display
	Position PositionType
	Overflow Overflow

	// Box model
	Margin  core.UiRect
	Padding core.UiRect
	Border  core.UiRect
	Inset   core.UiRect

	// Sizing
	Size        Size
	MinSize     Size
	MaxSize     Size
	AspectRatio float64 // width/height; 0 means none

	// Flex container
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignContent   AlignContent
	RowGap         core.Val
	ColumnGap      core.Val

	// Flex child
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  core.Val
	AlignSelf  AlignSelf

	// Grid container
	GridTemplateRows    []GridTrack
	GridTemplateColumns []GridTrack
	GridAutoRows        []GridTrack
	GridAutoColumns     []GridTrack
	GridAutoFlow        GridAutoFlow
	JustifyItems        AlignItems

	// Grid child
	GridRow     GridPlacement
	GridColumn  GridPlacement
	JustifySelf AlignSelf
}

// DefaultStyle returns the style of a freshly spawned node:
// flex container, auto sizing, shrinkable, stretch alignment
func DefaultStyle() StyleComponent {
	return StyleComponent{
		Size:       SizeAuto(),
		MinSize:    SizeAuto(),
		MaxSize:    SizeAuto(),
		FlexShrink: 1,
		FlexBasis:  core.Auto(),
	}
}
