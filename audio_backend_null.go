// audio_backend_null.go - Recording no-op audio backend

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import "sync"

// NullOutput discards audio but remembers the last submitted tone.
// Backs the -mute flag and lets tests observe playback without a device.
type NullOutput struct {
	sampleRate int
	started    bool
	last       []int16
	replaced   int
	mutex      sync.Mutex
}

func NewNullOutput(sampleRate int) *NullOutput {
	return &NullOutput{sampleRate: sampleRate}
}

func (no *NullOutput) Replace(samples []int16) error {
	if len(samples) == 0 {
		return &AudioError{Operation: "tone submit", Details: "empty sample buffer"}
	}
	no.mutex.Lock()
	defer no.mutex.Unlock()
	no.last = samples
	no.replaced++
	return nil
}

func (no *NullOutput) Start() error {
	no.mutex.Lock()
	defer no.mutex.Unlock()
	no.started = true
	return nil
}

func (no *NullOutput) Stop() error {
	no.mutex.Lock()
	defer no.mutex.Unlock()
	no.started = false
	return nil
}

func (no *NullOutput) Close() error {
	return no.Stop()
}

func (no *NullOutput) IsStarted() bool {
	no.mutex.Lock()
	defer no.mutex.Unlock()
	return no.started
}

func (no *NullOutput) SampleRate() int {
	return no.sampleRate
}

// LastTone returns the most recently submitted buffer, nil if none.
func (no *NullOutput) LastTone() []int16 {
	no.mutex.Lock()
	defer no.mutex.Unlock()
	return no.last
}

// ReplaceCount reports how many tones have been submitted.
func (no *NullOutput) ReplaceCount() int {
	no.mutex.Lock()
	defer no.mutex.Unlock()
	return no.replaced
}
