package game

import "math/rand"

// Sprite is one renderable object.
type Sprite struct {
	Kind   Kind
	Bounds Rect
}

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	Best       int
	Kills      int
	Lives      int
	Level      int
	BossHealth int // 0 when no boss is alive
	Sprites    []Sprite
}

// Snapshot captures the current frame. Platforms come first so that moving
// objects are drawn over them.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.Tick,
		Phase: s.Phase,
		Score: s.Score,
		Best:  s.Best,
		Kills: s.Kills,
		Lives: s.Player.Lives,
		Level: s.Level,
	}

	n := len(s.Platforms) + len(s.Projectiles) + len(s.Enemies) + len(s.GreenEnemies) + len(s.LifeBoxes) + 2
	snap.Sprites = make([]Sprite, 0, n)
	for _, p := range s.Platforms {
		kind := KindPlatform
		if p.Ground {
			kind = KindGround
		}
		snap.Sprites = append(snap.Sprites, Sprite{Kind: kind, Bounds: p.Bounds()})
	}
	for _, group := range [][]Mob{s.LifeBoxes, s.GreenEnemies, s.Enemies, s.Projectiles} {
		for i := range group {
			snap.Sprites = append(snap.Sprites, Sprite{Kind: group[i].Kind, Bounds: group[i].Bounds()})
		}
	}
	if s.Boss != nil {
		snap.BossHealth = s.Boss.Health
		snap.Sprites = append(snap.Sprites, Sprite{Kind: KindBigEnemy, Bounds: s.Boss.Bounds()})
	}
	snap.Sprites = append(snap.Sprites, Sprite{Kind: KindPlayer, Bounds: s.Player.Bounds()})
	return snap
}

const (
	FireworkCount      = 10
	FireworkRadius     = 5
	FireworkSteps      = 50
	FireworkPaletteLen = 5
)

// Firework is one burst of the victory animation. Color indexes a
// frontend palette of FireworkPaletteLen colors.
type Firework struct {
	X, Y  float64
	Color int
}

// NewFireworks places the bursts of the victory animation.
func NewFireworks(rng *rand.Rand) []Firework {
	fw := make([]Firework, FireworkCount)
	for i := range fw {
		fw[i] = Firework{
			X:     float64(randRange(rng, 100, ScreenWidth-100)),
			Y:     float64(randRange(rng, 100, ScreenHeight/2)),
			Color: rng.Intn(FireworkPaletteLen),
		}
	}
	return fw
}

// FireworkRadiusAt is the burst radius at animation step i.
func FireworkRadiusAt(step int) float64 {
	return float64(FireworkRadius + step)
}
