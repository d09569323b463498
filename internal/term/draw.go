package term

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"platshoot/internal/game"
)

var (
	styleDefault  = tcell.StyleDefault
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBoundary = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

type glyph struct {
	ch    rune
	style tcell.Style
}

var glyphs = map[game.Kind]glyph{
	game.KindPlayer:     {'█', tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 128, 255))},
	game.KindPlatform:   {'▀', tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 69, 19))},
	game.KindGround:     {'▀', tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 100, 0))},
	game.KindProjectile: {'=', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	game.KindEnemy:      {'█', tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0))},
	game.KindGreenEnemy: {'█', tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0))},
	game.KindBigEnemy:   {'▓', tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0))},
	game.KindLifeBox:    {'+', tcell.StyleDefault.Foreground(tcell.NewRGBColor(128, 0, 128)).Bold(true)},
}

var fireworkColors = [game.FireworkPaletteLen]tcell.Color{
	tcell.NewRGBColor(255, 0, 0),
	tcell.NewRGBColor(0, 255, 0),
	tcell.NewRGBColor(0, 0, 255),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(255, 0, 255),
}

// cellX maps a world x coordinate to a terminal column.
func (f *Frontend) cellX(x float64) int {
	return int(math.Floor(x * float64(f.width) / game.ScreenWidth))
}

// cellY maps a world y coordinate to a terminal row.
func (f *Frontend) cellY(y float64) int {
	return int(math.Floor(y * float64(f.height) / game.ScreenHeight))
}

// fillRect paints every cell covered by r. Anything visible covers at
// least one cell.
func (f *Frontend) fillRect(r game.Rect, g glyph) {
	x0, y0 := f.cellX(r.X), f.cellY(r.Y)
	x1 := int(math.Ceil(r.Right()*float64(f.width)/game.ScreenWidth)) - 1
	y1 := int(math.Ceil(r.Bottom()*float64(f.height)/game.ScreenHeight)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := max(y0, 0); y <= min(y1, f.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, f.width-1); x++ {
			f.screen.SetContent(x, y, g.ch, nil, g.style)
		}
	}
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		f.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (f *Frontend) drawCentered(text string, style tcell.Style) {
	x := (f.width - len([]rune(text))) / 2
	f.drawText(max(x, 0), f.height/2, text, style)
}

func (f *Frontend) drawBoundary() {
	y := f.cellY(game.UpperBound)
	for x := 0; x < f.width; x++ {
		f.screen.SetContent(x, y, '─', nil, styleBoundary)
	}
}

func (f *Frontend) drawHUD(snap game.Snapshot) {
	hud := fmt.Sprintf("Score: %d  Best: %d  Kills: %d  Lives: %d  Level: %d",
		snap.Score, snap.Best, snap.Kills, snap.Lives, snap.Level)
	if snap.BossHealth > 0 {
		hud += fmt.Sprintf("  Boss: %d", snap.BossHealth)
	}
	f.drawText(0, 0, hud, styleHUD)
}

// render draws one frame from a snapshot.
func (f *Frontend) render(snap game.Snapshot) {
	f.screen.Clear()
	f.drawBoundary()

	switch snap.Phase {
	case game.Paused:
		f.drawCentered("Game Paused. Press P to Resume", styleMessage)
	case game.GameOver:
		f.drawHUD(snap)
		f.drawCentered("Game Over! Press R to restart", styleMessage)
	default:
		for _, s := range snap.Sprites {
			f.fillRect(s.Bounds, glyphs[s.Kind])
		}
		f.drawHUD(snap)
		if snap.Phase == game.Won {
			f.drawCentered("You Win!", styleMessage)
		}
	}

	f.screen.Show()
}

// celebrate holds the win message for a second, then plays the fireworks.
// Quit input cuts it short.
func (f *Frontend) celebrate(events <-chan tcell.Event) {
	if !f.wait(events, time.Second) {
		return
	}

	fireworks := game.NewFireworks(f.rng)
	for step := 0; step < game.FireworkSteps; step++ {
		f.screen.Clear()
		for _, fw := range fireworks {
			f.drawBurst(fw, game.FireworkRadiusAt(step))
		}
		f.screen.Show()
		if !f.wait(events, 50*time.Millisecond) {
			return
		}
	}
}

// drawBurst fills the circle of a firework, measured in world units.
func (f *Frontend) drawBurst(fw game.Firework, radius float64) {
	style := styleDefault.Foreground(fireworkColors[fw.Color])
	bounds := game.Rect{X: fw.X - radius, Y: fw.Y - radius, W: 2 * radius, H: 2 * radius}
	for y := max(f.cellY(bounds.Y), 0); y <= min(f.cellY(bounds.Bottom()), f.height-1); y++ {
		for x := max(f.cellX(bounds.X), 0); x <= min(f.cellX(bounds.Right()), f.width-1); x++ {
			wx := (float64(x) + 0.5) * game.ScreenWidth / float64(f.width)
			wy := (float64(y) + 0.5) * game.ScreenHeight / float64(f.height)
			if math.Hypot(wx-fw.X, wy-fw.Y) <= radius {
				f.screen.SetContent(x, y, '●', nil, style)
			}
		}
	}
}

// wait sleeps for d while still honoring quit input.
func (f *Frontend) wait(events <-chan tcell.Event, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case ev := <-events:
			if ev == nil || !f.handleEvent(ev, time.Now()) {
				return false
			}
		case <-timer.C:
			return true
		}
	}
}
