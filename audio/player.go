// Package audio provides interaction sound feedback.
// Cues are short sine tones rendered once at startup into memory buffers;
// playback is a buffer streamer handed to the speaker, so the UI thread
// never blocks on audio.
package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flexui/core"
)

const sampleRate = beep.SampleRate(44100)

// cueSpec describes one pre-rendered tone
type cueSpec struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var cueSpecs = map[core.SoundCue]cueSpec{
	core.CueHover: {freq: 660, duration: 30 * time.Millisecond, volume: 0.10},
	core.CuePress: {freq: 440, duration: 45 * time.Millisecond, volume: 0.16},
	core.CueClick: {freq: 880, duration: 60 * time.Millisecond, volume: 0.16},
}

// CuePlayer renders and plays interaction cues
// Implements engine.AudioPlayer. Safe for concurrent use: playback state
// lives in the speaker, mute is atomic
type CuePlayer struct {
	buffers [core.CueCount]*beep.Buffer
	muted   atomic.Bool
}

// NewCuePlayer initializes the speaker and pre-renders all cues
func NewCuePlayer() (*CuePlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond)); err != nil {
		return nil, err
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	p := &CuePlayer{}
	for cue, spec := range cueSpecs {
		buf := beep.NewBuffer(format)
		buf.Append(newTone(spec))
		p.buffers[cue] = buf
	}
	return p, nil
}

// Play starts a cue; returns false when muted or the cue is unknown
func (p *CuePlayer) Play(cue core.SoundCue) bool {
	if p.muted.Load() {
		return false
	}
	if cue < 0 || cue >= core.CueCount || p.buffers[cue] == nil {
		return false
	}
	buf := p.buffers[cue]
	speaker.Play(buf.Streamer(0, buf.Len()))
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the current mute state
func (p *CuePlayer) IsMuted() bool {
	return p.muted.Load()
}

// tone is a finite sine streamer with a linear fade-out to avoid clicks
type tone struct {
	freq   float64
	volume float64
	length int
	pos    int
}

func newTone(spec cueSpec) *tone {
	return &tone{
		freq:   spec.freq,
		volume: spec.volume,
		length: sampleRate.N(spec.duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(sampleRate)
		fade := 1 - float64(t.pos)/float64(t.length)
		v := math.Sin(phase) * t.volume * fade
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
