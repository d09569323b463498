// Package term runs the game in a terminal through tcell. The 800x600
// world is scaled onto whatever cell grid the terminal offers.
package term

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"platshoot/internal/game"
)

// Terminals report presses but never releases, so a key counts as held
// for keyTimeout after its last press or auto-repeat.
const keyTimeout = 150 * time.Millisecond

type key int

const (
	keyLeft key = iota
	keyRight
	keyJump
	keyShoot
	keyPause
	keyRestart
)

type Frontend struct {
	screen tcell.Screen
	state  *game.State
	rng    *rand.Rand
	tick   time.Duration
	width  int
	height int
	keys   map[key]time.Time
}

// New wraps an initialized screen. tps is the fixed update rate.
func New(screen tcell.Screen, state *game.State, rng *rand.Rand, tps int) *Frontend {
	width, height := screen.Size()
	return &Frontend{
		screen: screen,
		state:  state,
		rng:    rng,
		tick:   time.Second / time.Duration(tps),
		width:  width,
		height: height,
		keys:   make(map[key]time.Time),
	}
}

// handleEvent records key presses and resizes. It returns false when the
// player asked to quit.
func (f *Frontend) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			f.keys[keyLeft] = now
		case tcell.KeyRight:
			f.keys[keyRight] = now
		case tcell.KeyUp:
			f.keys[keyJump] = now
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				f.keys[keyJump] = now
			case 's', 'S':
				f.keys[keyShoot] = now
			case 'p', 'P':
				f.keys[keyPause] = now
			case 'r', 'R':
				f.keys[keyRestart] = now
			case 'q', 'Q':
				return false
			}
		}
	case *tcell.EventResize:
		f.width, f.height = f.screen.Size()
		f.screen.Sync()
	}
	return true
}

// input turns the recorded presses into the held-key snapshot for now.
func (f *Frontend) input(now time.Time) game.Input {
	held := func(k key) bool {
		last, ok := f.keys[k]
		return ok && now.Sub(last) < keyTimeout
	}
	return game.Input{
		Left:    held(keyLeft),
		Right:   held(keyRight),
		Jump:    held(keyJump),
		Shoot:   held(keyShoot),
		Pause:   held(keyPause),
		Restart: held(keyRestart),
	}
}

// Run drives the game at the fixed tick rate until the player quits or
// the victory animation has played.
func (f *Frontend) Run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if ev == nil {
				return
			}
			if !f.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			f.state.Step(f.input(now))
			f.render(f.state.Snapshot())
			if f.state.Phase == game.Won {
				f.celebrate(events)
				return
			}
		}
	}
}
