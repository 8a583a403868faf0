// pitch_mapper.go - Colour to MIDI note and note to frequency mapping

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import "math"

// reservedNotes pins the structural background and foreground tones to
// fixed, recognisable pitches instead of the generative mapping.
var reservedNotes = map[CellColor]int{
	{R: 0x00, G: 0x00, B: 0x00}: 36, // C2 - black
	{R: 0x0a, G: 0x0a, B: 0x0a}: 38, // D2 - very dark gray
	{R: 0x1a, G: 0x1a, B: 0x1a}: 40, // E2 - dark gray
	{R: 0xff, G: 0xff, B: 0xff}: 60, // C4 - white
}

// NoteForColor maps a colour to a MIDI note in [NOTE_MIN, NOTE_MAX].
// Reserved colours bypass the formula. Otherwise each channel picks a
// semitone offset inside its octave band (red low, green middle, blue
// high) and the three partial notes are averaged. math.Round is
// half-away-from-zero; a three-term integer mean can only carry a
// fraction of 0, 1/3 or 2/3, so the tie rule never actually fires.
func NoteForColor(c CellColor) int {
	if note, ok := reservedNotes[c]; ok {
		return note
	}

	redNote := NOTE_BAND_RED + int(float64(c.R)/255*NOTE_BAND_SPAN)
	greenNote := NOTE_BAND_GREEN + int(float64(c.G)/255*NOTE_BAND_SPAN)
	blueNote := NOTE_BAND_BLUE + int(float64(c.B)/255*NOTE_BAND_SPAN)

	note := int(math.Round(float64(redNote+greenNote+blueNote) / 3))
	if note < NOTE_MIN {
		note = NOTE_MIN
	}
	if note > NOTE_MAX {
		note = NOTE_MAX
	}
	return note
}

// NoteFrequency converts a MIDI note number to Hz using equal temperament
// with A4 (note 69) at 440Hz.
func NoteFrequency(note int) float64 {
	return FREQ_A4 * math.Pow(2, float64(note-NOTE_A4)/12)
}
