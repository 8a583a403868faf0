// screensaver_constants.go - Fixed tuning constants for the grid and synth

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

const (
	SAMPLE_RATE   = 44100 // PCM sample rate shared by synth and sink
	TONE_DURATION = 0.2   // Tone length in seconds
	FADE_WINDOW   = 0.01  // Linear fade at each tone edge, in seconds
	TONE_GAIN     = 0.3   // Post-envelope gain, leaves clipping headroom
	MAX_SAMPLE    = 32767 // Peak amplitude of a 16-bit signed sample
)

const (
	UPDATE_INTERVAL_MS = 500 // 120 BPM: one new cell every half beat-second
	GRID_GAP           = 2   // Pixels between adjacent cells
	MIN_CELL_SIZE      = 20  // Target cell size floor in pixels
	CELL_SIZE_DIVISOR  = 30  // Target cell size = min(w,h) / this
	MIN_GRID_COLS      = 10
	MIN_GRID_ROWS      = 10
)

const (
	NOTE_MIN = 36 // C2
	NOTE_MAX = 96 // C7
	NOTE_A4  = 69
	FREQ_A4  = 440.0

	NOTE_BAND_RED   = 36 // Red channel maps into C2-B2
	NOTE_BAND_GREEN = 48 // Green channel maps into C3-B3
	NOTE_BAND_BLUE  = 60 // Blue channel maps into C4-B4
	NOTE_BAND_SPAN  = 12 // Semitones per channel band
)

const (
	TEXT_MIN_CELL    = 15  // No label at or below this cell size
	TEXT_HEX_CELL    = 25  // Above this: uppercase #RRGGBB label
	TEXT_RGB_CELL    = 40  // Above this: decimal R,G,B label
	BRIGHTNESS_PIVOT = 128 // Label is black above this brightness, else white
)
