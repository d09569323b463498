//go:build !nowindow

// Package window runs the game in a native 800x600 window through ebiten.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"platshoot/internal/game"
)

const (
	audioSampleRate = 44100

	winHoldTicks     = 60 // "You Win!" before the fireworks
	fireworkStepTick = 3  // 50ms per step at 60 TPS
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorBoundary   = color.RGBA{0, 0, 0, 255}
)

var kindColors = map[game.Kind]color.RGBA{
	game.KindPlayer:     {0, 128, 255, 255},
	game.KindPlatform:   {139, 69, 19, 255},
	game.KindGround:     {0, 100, 0, 255},
	game.KindProjectile: {0, 0, 0, 255},
	game.KindEnemy:      {255, 0, 0, 255},
	game.KindGreenEnemy: {0, 255, 0, 255},
	game.KindBigEnemy:   {255, 0, 0, 255},
	game.KindLifeBox:    {128, 0, 128, 255},
}

var fireworkColors = [game.FireworkPaletteLen]color.RGBA{
	{255, 0, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 0, 255, 255},
}

// Window implements ebiten.Game around a game.State.
type Window struct {
	state *game.State
	rng   *rand.Rand
	snap  game.Snapshot

	// Victory animation progress, counted in ticks after the win
	wonTicks  int
	fireworks []game.Firework
}

// Available reports whether this build carries the window frontend.
func Available() bool { return true }

// Run opens the window and blocks until it is closed or the victory
// animation ends.
func Run(state *game.State, rng *rand.Rand, tps int) error {
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("platshoot")
	ebiten.SetTPS(tps)

	w := &Window{state: state, rng: rng, snap: state.Snapshot()}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func readInput() game.Input {
	return game.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Shoot:   ebiten.IsKeyPressed(ebiten.KeyS),
		Pause:   ebiten.IsKeyPressed(ebiten.KeyP),
		Restart: ebiten.IsKeyPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (w *Window) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}

	if w.state.Phase == game.Won {
		return w.updateVictory()
	}

	w.state.Step(in)
	w.snap = w.state.Snapshot()
	return nil
}

func (w *Window) updateVictory() error {
	if w.fireworks == nil {
		w.fireworks = game.NewFireworks(w.rng)
	}
	w.wonTicks++
	if w.wonTicks >= winHoldTicks+game.FireworkSteps*fireworkStepTick {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if w.wonTicks > winHoldTicks {
		step := (w.wonTicks - winHoldTicks) / fireworkStepTick
		radius := float32(game.FireworkRadiusAt(step))
		for _, fw := range w.fireworks {
			vector.DrawFilledCircle(screen, float32(fw.X), float32(fw.Y), radius, fireworkColors[fw.Color], true)
		}
		return
	}

	vector.StrokeLine(screen, 0, game.UpperBound, game.ScreenWidth, game.UpperBound, 5, colorBoundary, false)

	switch w.snap.Phase {
	case game.Paused:
		ebitenutil.DebugPrintAt(screen, "Game Paused. Press P to Resume", game.ScreenWidth/2-90, game.ScreenHeight/2)
		return
	case game.GameOver:
		drawHUD(screen, w.snap)
		ebitenutil.DebugPrintAt(screen, "Game Over! Press R to restart", game.ScreenWidth/2-90, game.ScreenHeight/2)
		return
	}

	for _, s := range w.snap.Sprites {
		r := s.Bounds
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), kindColors[s.Kind], false)
	}
	drawHUD(screen, w.snap)

	if w.snap.Phase == game.Won {
		ebitenutil.DebugPrintAt(screen, "You Win!", game.ScreenWidth/2-25, game.ScreenHeight/2)
	}
}

func drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	lines := []string{
		fmt.Sprintf("Score: %d (best %d)", snap.Score, snap.Best),
		fmt.Sprintf("Kills: %d", snap.Kills),
		fmt.Sprintf("Lives: %d", snap.Lives),
		fmt.Sprintf("Level: %d", snap.Level),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 60+i*16)
	}
	if snap.BossHealth > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Boss: %d", snap.BossHealth), game.ScreenWidth-80, 60)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}

// Sound plays the death effect through ebiten's audio context.
type Sound struct {
	player *audio.Player
}

// LoadSound decodes the wav at path. On failure it logs a warning and
// returns a silent Sound.
func LoadSound(path string) *Sound {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("warning: %v (continuing without audio)", err)
		return &Sound{}
	}

	ctx := audio.NewContext(audioSampleRate)
	stream, err := wav.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: decode %s: %v (continuing without audio)", path, err)
		return &Sound{}
	}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("warning: audio player: %v (continuing without audio)", err)
		return &Sound{}
	}
	return &Sound{player: player}
}

func (s *Sound) PlayerDied() {
	if s.player == nil {
		return
	}
	if err := s.player.Rewind(); err != nil {
		log.Printf("rewind death sound: %v", err)
		return
	}
	s.player.Play()
}
