package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"platshoot/internal/audio"
	"platshoot/internal/game"
	"platshoot/internal/term"
	"platshoot/internal/window"
)

const (
	logDir      = "logs"
	logFileName = "platshoot.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	frontendFlag = flag.String("frontend", "term", "Frontend: term, window")
	soundFlag    = flag.String("sound", audio.DefaultDeathSound, "WAV file played when the player dies")
	tpsFlag      = flag.Int("tps", 60, "Game updates per second")
	seedFlag     = flag.Int64("seed", 0, "Random seed (0 = time based)")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
)

// setupLogging sends the standard logger to the log file when debug is set
// and discards it otherwise. The terminal belongs to the game, so logs
// never go to stdout or stderr.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotateErr = os.Rename(logPath, filepath.Join(logDir, rotatedLogName(logClock())))
	}

	// A failed rotation keeps appending to the existing file
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		log.Printf("warning: rotate log: %v", rotateErr)
	}
	return f
}

var logClock = time.Now

func rotatedLogName(t time.Time) string {
	return fmt.Sprintf("platshoot-%s.log", t.Format("20060102-150405"))
}

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *tpsFlag <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -tps %d\n", *tpsFlag)
		os.Exit(2)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("starting frontend=%s seed=%d tps=%d", *frontendFlag, seed, *tpsFlag)

	var err error
	switch *frontendFlag {
	case "term":
		err = runTerminal(rng)
	case "window":
		err = runWindow(rng)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontendFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runTerminal(rng *rand.Rand) error {
	sound := audio.NewSoundManager()
	var died game.Sound = sound
	if err := sound.Load(*soundFlag); err != nil {
		log.Printf("warning: %v (continuing without audio)", err)
		died = game.NopSound{}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	defer screen.Fini()
	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	state := game.NewState(rng, died)
	term.New(screen, state, rng, *tpsFlag).Run()
	log.Printf("exit phase=%s score=%d best=%d", state.Phase, state.Score, state.Best)
	return nil
}

func runWindow(rng *rand.Rand) error {
	if !window.Available() {
		return window.Run(nil, rng, *tpsFlag)
	}
	state := game.NewState(rng, window.LoadSound(*soundFlag))
	if err := window.Run(state, rng, *tpsFlag); err != nil {
		return err
	}
	log.Printf("exit phase=%s score=%d best=%d", state.Phase, state.Score, state.Best)
	return nil
}
