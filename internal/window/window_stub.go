//go:build nowindow

package window

import (
	"errors"
	"math/rand"

	"platshoot/internal/game"
)

// Available reports whether this build carries the window frontend.
func Available() bool { return false }

func Run(state *game.State, rng *rand.Rand, tps int) error {
	return errors.New("window frontend not available in this build, rebuild without -tags nowindow")
}

// Sound is silent in builds without the window frontend.
type Sound struct{}

func LoadSound(path string) *Sound { return &Sound{} }

func (s *Sound) PlayerDied() {}
