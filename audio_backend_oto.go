// audio_backend_oto.go - OTO v3 audio output implementation

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// toneStream is one in-flight tone. pos is advanced only on the oto
// reader goroutine; swapping the stream pointer is what stops playback.
type toneStream struct {
	samples []int16
	pos     int
}

type OtoOutput struct {
	ctx        *oto.Context
	player     *oto.Player
	sampleRate int
	active     atomic.Pointer[toneStream] // Atomic for lock-free Read()
	started    bool
	mutex      sync.Mutex // Only for setup/control operations
}

func NewOtoOutput(sampleRate int) (*OtoOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, &AudioError{
			Operation: "context creation",
			Details:   "oto device unavailable",
			Err:       err,
		}
	}
	<-ready

	oo := &OtoOutput{
		ctx:        ctx,
		sampleRate: sampleRate,
	}
	oo.player = ctx.NewPlayer(oo)
	return oo, nil
}

// Read streams the active tone to the device, zero-filling once the tone
// is exhausted. The stream pointer is loaded atomically so the hot path
// never takes the control mutex.
func (oo *OtoOutput) Read(p []byte) (n int, err error) {
	stream := oo.active.Load()
	for i := 0; i+1 < len(p); i += 2 {
		var sample int16
		if stream != nil && stream.pos < len(stream.samples) {
			sample = stream.samples[stream.pos]
			stream.pos++
		}
		p[i] = byte(sample)
		p[i+1] = byte(uint16(sample) >> 8)
	}
	return len(p), nil
}

// Replace atomically swaps in a new tone, cutting off any tone still
// playing mid-buffer.
func (oo *OtoOutput) Replace(samples []int16) error {
	if len(samples) == 0 {
		return &AudioError{Operation: "tone submit", Details: "empty sample buffer"}
	}
	oo.active.Store(&toneStream{samples: samples})
	return nil
}

func (oo *OtoOutput) Start() error {
	oo.mutex.Lock()
	defer oo.mutex.Unlock()

	if !oo.started && oo.player != nil {
		oo.player.Play()
		oo.started = true
	}
	return nil
}

func (oo *OtoOutput) Stop() error {
	oo.mutex.Lock()
	defer oo.mutex.Unlock()

	if oo.started && oo.player != nil {
		oo.player.Pause()
		oo.started = false
	}
	return nil
}

func (oo *OtoOutput) Close() error {
	if err := oo.Stop(); err != nil {
		return err
	}
	oo.mutex.Lock()
	defer oo.mutex.Unlock()

	if oo.player != nil {
		if err := oo.player.Close(); err != nil {
			return &AudioError{Operation: "player close", Details: "oto player", Err: err}
		}
		oo.player = nil
	}
	return nil
}

func (oo *OtoOutput) IsStarted() bool {
	oo.mutex.Lock()
	defer oo.mutex.Unlock()
	return oo.started
}

func (oo *OtoOutput) SampleRate() int {
	return oo.sampleRate
}
