// fill_scheduler.go - Tempo-driven grid advance and tone trigger

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"
)

// FillScheduler fires one grid advance every UPDATE_INTERVAL_MS of wall
// time. It is level-triggered on the clock sample passed to Tick rather
// than counting frames, so the fill tempo does not depend on the render
// frame rate.
type FillScheduler struct {
	grid        *GridStore
	audio       AudioOutput
	colorFn     func() CellColor
	interval    time.Duration
	lastTrigger time.Time
}

func NewFillScheduler(grid *GridStore, audio AudioOutput, colorFn func() CellColor) *FillScheduler {
	return &FillScheduler{
		grid:     grid,
		audio:    audio,
		colorFn:  colorFn,
		interval: UPDATE_INTERVAL_MS * time.Millisecond,
	}
}

// Tick samples the clock and, if a full interval has elapsed, advances
// the grid by one cell and plays the matching tone. Returns whether an
// advance happened. The first Tick only arms the timer so the opening
// cell lands one full interval after startup.
//
// A tone that fails to synthesize or submit is logged and dropped; the
// grid update stands and that one cell is simply silent.
func (fs *FillScheduler) Tick(now time.Time) bool {
	if fs.lastTrigger.IsZero() {
		fs.lastTrigger = now
		return false
	}
	if now.Sub(fs.lastTrigger) < fs.interval {
		return false
	}
	fs.lastTrigger = now

	cellColor := fs.grid.Advance(fs.colorFn)

	note := NoteForColor(cellColor)
	tone := SynthesizeTone(NoteFrequency(note), TONE_DURATION, fs.audio.SampleRate())
	if err := fs.audio.Replace(tone); err != nil {
		fmt.Printf("Tone playback failed for %s: %v\n", cellColor.Hex(), err)
	}
	return true
}

// Interval reports the fixed trigger interval.
func (fs *FillScheduler) Interval() time.Duration {
	return fs.interval
}
