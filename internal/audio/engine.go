// Package audio synthesizes the game's sound effects and plays them
// through the beep speaker. All effects are generated procedurally at
// startup; there are no sample assets. Playback is best effort: if the
// host has no audio device the engine degrades to silence.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 2048 // samples per speaker buffer, ~46ms of latency
	masterGain = 0.35
)

// Engine owns the speaker and a cache of pre-rendered effect buffers.
type Engine struct {
	mu      sync.Mutex
	enabled bool
	muted   bool
	sounds  map[string]floatBuffer
}

// NewEngine initializes the speaker and pre-renders all effects.
// If the speaker cannot be opened the engine stays silent but usable.
func NewEngine() *Engine {
	e := &Engine{
		sounds: map[string]floatBuffer{
			"fire":          generateFireSound(),
			"enemy_down":    generateEnemyDownSound(),
			"player_hit":    generatePlayerHitSound(),
			"pickup":        generatePickupSound(),
			"gate_open":     generateGateOpenSound(),
			"level_advance": generateLevelAdvanceSound(),
		},
	}

	if err := speaker.Init(sampleRate, bufferSize); err == nil {
		e.enabled = true
	}

	return e
}

// Play queues the named effect. Unknown names and muted or disabled
// engines are silently ignored.
func (e *Engine) Play(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.muted {
		return
	}
	buf, ok := e.sounds[name]
	if !ok {
		return
	}

	speaker.Play(&bufferStreamer{buf: buf, gain: masterGain})
}

// PlayAll queues every effect in the batch, typically one tick's worth.
func (e *Engine) PlayAll(names []string) {
	for _, name := range names {
		e.Play(name)
	}
}

// ToggleMute flips the mute state and returns the new value.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

// Muted reports whether playback is muted.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Enabled reports whether the speaker opened successfully.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.enabled {
		speaker.Close()
		e.enabled = false
	}
}

// bufferStreamer adapts a mono float buffer to the beep streamer
// interface, duplicating the signal into both channels.
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
