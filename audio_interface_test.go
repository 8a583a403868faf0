// audio_interface_test.go - Backend factory and null backend tests

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAudioOutput_UnknownBackend(t *testing.T) {
	out, err := NewAudioOutput(99, SAMPLE_RATE)
	if out != nil || err == nil {
		t.Fatal("expected an error for an unknown backend type")
	}
	if !strings.Contains(err.Error(), "unknown backend type") {
		t.Errorf("error %q does not name the unknown backend", err)
	}
}

func TestAudioError_Formatting(t *testing.T) {
	underlying := errors.New("no such device")
	withErr := &AudioError{Operation: "context creation", Details: "oto device unavailable", Err: underlying}
	if got := withErr.Error(); got != "audio context creation failed: oto device unavailable: no such device" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(withErr, underlying) {
		t.Error("AudioError does not unwrap to the underlying error")
	}

	without := &AudioError{Operation: "tone submit", Details: "empty sample buffer"}
	if got := without.Error(); got != "audio tone submit failed: empty sample buffer" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestNullOutput_ReplaceSemantics(t *testing.T) {
	out, err := NewAudioOutput(AUDIO_BACKEND_NULL, SAMPLE_RATE)
	if err != nil {
		t.Fatalf("null backend creation failed: %v", err)
	}
	null := out.(*NullOutput)

	if null.SampleRate() != SAMPLE_RATE {
		t.Errorf("sample rate %d, want %d", null.SampleRate(), SAMPLE_RATE)
	}

	first := []int16{1, 1, 2, 2}
	second := []int16{3, 3}
	if err := null.Replace(first); err != nil {
		t.Fatalf("first Replace failed: %v", err)
	}
	if err := null.Replace(second); err != nil {
		t.Fatalf("second Replace failed: %v", err)
	}

	// The newest buffer always wins: at most one tone is active.
	if got := null.LastTone(); len(got) != 2 || got[0] != 3 {
		t.Errorf("LastTone = %v, want the replacing buffer %v", got, second)
	}
	if null.ReplaceCount() != 2 {
		t.Errorf("ReplaceCount = %d, want 2", null.ReplaceCount())
	}

	if err := null.Replace(nil); err == nil {
		t.Error("Replace accepted an empty buffer")
	}
}

func TestNullOutput_Lifecycle(t *testing.T) {
	null := NewNullOutput(SAMPLE_RATE)
	if null.IsStarted() {
		t.Error("started before Start")
	}
	if err := null.Start(); err != nil || !null.IsStarted() {
		t.Error("Start did not mark the output as started")
	}
	if err := null.Close(); err != nil || null.IsStarted() {
		t.Error("Close did not stop the output")
	}
}
