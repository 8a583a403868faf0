// tone_synth_test.go - Sine synthesis and envelope tests

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"math"
	"testing"
)

func TestSynthesizeTone_FrameCount(t *testing.T) {
	cases := []struct {
		freq   float64
		dur    float64
		rate   int
		frames int
	}{
		{440, 0.2, 44100, 8820},
		{1000, 0.1, 48000, 4800},
		{440, 0.015, 44100, 662}, // round(661.5) away from zero
		{440, 0, 44100, 0},
	}

	for _, tc := range cases {
		buf := SynthesizeTone(tc.freq, tc.dur, tc.rate)
		if len(buf) != tc.frames*2 {
			t.Errorf("SynthesizeTone(%v, %v, %d): %d samples, want %d frames interleaved stereo",
				tc.freq, tc.dur, tc.rate, len(buf), tc.frames)
		}
	}
}

func TestSynthesizeTone_StereoDuplication(t *testing.T) {
	buf := SynthesizeTone(440, 0.05, 44100)
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("frame %d: left %d != right %d", i/2, buf[i], buf[i+1])
		}
	}
}

func TestSynthesizeTone_GainHeadroom(t *testing.T) {
	buf := SynthesizeTone(440, 0.2, 44100)
	peak := float64(MAX_SAMPLE) * TONE_GAIN
	limit := int16(peak) + 1
	for i, s := range buf {
		if s > limit || s < -limit {
			t.Fatalf("sample %d = %d exceeds gain-limited peak %d", i, s, limit)
		}
	}
	if buf[0] != 0 {
		t.Errorf("first sample = %d, want 0 under the fade-in envelope", buf[0])
	}
}

// Envelope ratios are checked against the un-enveloped waveform at the
// same index, away from zero crossings where quantisation dominates.
func TestSynthesizeTone_FadeEnvelope(t *testing.T) {
	const (
		freq = 440.0
		rate = 44100
		dur  = 0.2
	)
	buf := SynthesizeTone(freq, dur, rate)
	frames := len(buf) / 2
	fade := int(FADE_WINDOW * rate) // 441

	raw := func(i int) float64 {
		return math.Sin(2*math.Pi*freq*float64(i)/rate) * MAX_SAMPLE * TONE_GAIN
	}

	prev := -1.0
	for i := 0; i < fade; i++ {
		r := raw(i)
		if math.Abs(r) < 2000 {
			continue
		}
		ratio := float64(buf[2*i]) / r
		want := float64(i) / float64(fade)
		if math.Abs(ratio-want) > 0.02 {
			t.Fatalf("fade-in frame %d: envelope %.4f, want %.4f", i, ratio, want)
		}
		if ratio < prev-0.005 {
			t.Fatalf("fade-in frame %d: envelope %.4f fell below previous %.4f", i, ratio, prev)
		}
		prev = ratio
	}

	prev = 2.0
	for i := frames - fade; i < frames; i++ {
		r := raw(i)
		if math.Abs(r) < 2000 {
			continue
		}
		ratio := float64(buf[2*i]) / r
		want := float64(frames-i) / float64(fade)
		if math.Abs(ratio-want) > 0.02 {
			t.Fatalf("fade-out frame %d: envelope %.4f, want %.4f", i, ratio, want)
		}
		if ratio > prev+0.005 {
			t.Fatalf("fade-out frame %d: envelope %.4f rose above previous %.4f", i, ratio, prev)
		}
		prev = ratio
	}
}

func TestSynthesizeTone_SteadyStateMatchesSine(t *testing.T) {
	const (
		freq = 440.0
		rate = 44100
	)
	buf := SynthesizeTone(freq, 0.2, rate)
	fade := int(FADE_WINDOW * rate)
	frames := len(buf) / 2

	for i := fade + 1; i < frames-fade-1; i++ {
		want := math.Sin(2*math.Pi*freq*float64(i)/rate) * MAX_SAMPLE * TONE_GAIN
		if diff := math.Abs(float64(buf[2*i]) - want); diff > 1 {
			t.Fatalf("steady frame %d: sample %d, want %.1f", i, buf[2*i], want)
		}
	}
}
