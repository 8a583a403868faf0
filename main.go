// main.go - Main entry point for the ChromaGrid screensaver

/*
ChromaGrid - a musical RGB grid screensaver

(c) 2025 - 2026 ChromaGrid contributors
https://github.com/chromagrid/chromagrid
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/term"
)

func boilerPlate() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("\n\033[38;2;255;20;147mC h r o m a G r i d\033[0m")
	} else {
		fmt.Println("\nC h r o m a G r i d")
	}
	fmt.Println("A musical RGB grid screensaver: every beat adds a colour and plays its note.")
	fmt.Println("https://github.com/chromagrid/chromagrid")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	boilerPlate()

	var (
		windowed bool
		mute     bool
		seed     int64
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVar(&windowed, "windowed", false, "Run in a window instead of fullscreen")
	flagSet.BoolVar(&mute, "mute", false, "Run without an audio device")
	flagSet.Int64Var(&seed, "seed", 0, "Colour stream seed (0 = time based)")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./chromagrid [-windowed] [-mute] [-seed N]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(windowed, mute, seed); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

// run owns all resource acquisition so deferred cleanup fires on every
// exit path, including an abnormal end of the display loop.
func run(windowed, mute bool, seed int64) error {
	backend := AUDIO_BACKEND_OTO
	if mute {
		backend = AUDIO_BACKEND_NULL
	}

	// Audio is a core feature: failing to open the device is fatal.
	audio, err := NewAudioOutput(backend, SAMPLE_RATE)
	if err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}
	defer audio.Close()
	if err := audio.Start(); err != nil {
		return fmt.Errorf("failed to start audio: %w", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	monitorW, monitorH := ebiten.Monitor().Size()
	if monitorW <= 0 || monitorH <= 0 {
		monitorW, monitorH = 640, 480
	}

	grid := NewGridStore(monitorW, monitorH)
	scheduler := NewFillScheduler(grid, audio, UniformColor(rng))
	view := NewScreensaverView(grid, scheduler)

	ebiten.SetWindowTitle("ChromaGrid")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetFullscreen(!windowed)
	if windowed {
		ebiten.SetWindowSize(monitorW/2, monitorH/2)
	}

	// RunGame returns nil on ebiten.Termination, i.e. a clean input exit.
	if err := ebiten.RunGame(view); err != nil {
		return fmt.Errorf("display loop failed: %w", err)
	}
	return nil
}
