// tone_synth.go - Sine tone synthesis with click-suppressing envelope

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import "math"

// SynthesizeTone renders a sine wave at the given frequency into an
// interleaved stereo 16-bit buffer (left == right). A linear fade over
// FADE_WINDOW seconds at each edge removes the click a truncated
// waveform would produce, and TONE_GAIN is applied after the envelope.
// Pure function of its inputs, safe for concurrent use.
func SynthesizeTone(frequencyHz, durationSec float64, sampleRate int) []int16 {
	frames := int(math.Round(durationSec * float64(sampleRate)))
	if frames < 0 {
		frames = 0
	}
	buf := make([]int16, frames*2)

	fadeFrames := FADE_WINDOW * float64(sampleRate)
	for i := 0; i < frames; i++ {
		wave := math.Sin(2 * math.Pi * frequencyHz * float64(i) / float64(sampleRate))

		envelope := 1.0
		if float64(i) < fadeFrames {
			envelope = float64(i) / fadeFrames
		} else if float64(i) > float64(frames)-fadeFrames {
			envelope = float64(frames-i) / fadeFrames
		}

		sample := int16(wave * MAX_SAMPLE * envelope * TONE_GAIN)
		buf[2*i] = sample
		buf[2*i+1] = sample
	}
	return buf
}
