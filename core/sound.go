package core

// SoundCue represents interaction feedback sounds
type SoundCue int

const (
	CueHover SoundCue = iota // Pointer entered a node
	CuePress                 // Primary button down on a node
	CueClick                 // Press released on the same node
	CueCount
)