// audio_interface.go - Audio sink interface and backend factory

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import "fmt"

// AudioError provides detailed error context for audio operations
type AudioError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *AudioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("audio %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("audio %s failed: %s", e.Operation, e.Details)
}

func (e *AudioError) Unwrap() error {
	return e.Err
}

// AudioOutput defines the minimal interface that playback backends must
// implement. Replace hands over a complete stereo 16-bit tone buffer for
// immediate playback; submitting a new buffer implicitly stops whatever
// is still playing, so at most one tone is ever active.
type AudioOutput interface {
	// Lifecycle management
	Start() error
	Stop() error
	Close() error
	IsStarted() bool

	// Playback
	Replace(samples []int16) error
	SampleRate() int
}

// Predefined audio backend types
const (
	AUDIO_BACKEND_OTO  = iota // Pure Go oto backend
	AUDIO_BACKEND_NULL        // Recording no-op backend, used by -mute and tests
)

// NewAudioOutput creates a new audio output instance using the specified backend
func NewAudioOutput(backend int, sampleRate int) (AudioOutput, error) {
	switch backend {
	case AUDIO_BACKEND_OTO:
		return NewOtoOutput(sampleRate)
	case AUDIO_BACKEND_NULL:
		return NewNullOutput(sampleRate), nil
	}
	return nil, &AudioError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %d", backend),
	}
}
