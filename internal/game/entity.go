package game

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	UpperBound   = 50 // Hard ceiling for the player

	PlayerWidth  = 50
	PlayerHeight = 80

	ProjectileWidth  = 10
	ProjectileHeight = 5

	EnemyWidth  = 50
	EnemyHeight = 50

	BossWidth  = 100
	BossHeight = 100
	BossHealth = 5

	LifeBoxWidth  = 30
	LifeBoxHeight = 30

	MaxLives = 3
)

type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box with its top-left corner at X,Y.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt returns a w by h rectangle centered on cx,cy.
func RectAt(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether the two rectangles overlap. Touching edges
// do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Kind tags every renderable object.
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindGround
	KindProjectile
	KindEnemy
	KindGreenEnemy
	KindBigEnemy
	KindLifeBox
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindPlatform:
		return "Platform"
	case KindGround:
		return "Ground"
	case KindProjectile:
		return "Projectile"
	case KindEnemy:
		return "Enemy"
	case KindGreenEnemy:
		return "GreenEnemy"
	case KindBigEnemy:
		return "BigEnemy"
	case KindLifeBox:
		return "LifeBox"
	default:
		return "Unknown"
	}
}

// Mob is any object that drifts horizontally at a constant speed:
// projectiles move right, everything else moves left.
type Mob struct {
	Kind   Kind
	Pos    Vec2 // Top-left corner
	Width  float64
	Height float64
	Speed  float64 // Pixels per tick
	Active bool    // Cleared once off screen or hit; compacted away
}

func newMob(kind Kind, cx, cy, w, h, speed float64) Mob {
	r := RectAt(cx, cy, w, h)
	return Mob{
		Kind:   kind,
		Pos:    Vec2{X: r.X, Y: r.Y},
		Width:  w,
		Height: h,
		Speed:  speed,
		Active: true,
	}
}

func NewProjectile(cx, cy float64) Mob {
	return newMob(KindProjectile, cx, cy, ProjectileWidth, ProjectileHeight, 10)
}

func NewEnemy(cx, cy, speed float64) Mob {
	return newMob(KindEnemy, cx, cy, EnemyWidth, EnemyHeight, speed)
}

func NewGreenEnemy(cx, cy float64) Mob {
	return newMob(KindGreenEnemy, cx, cy, EnemyWidth, EnemyHeight, 2)
}

func NewLifeBox(cx, cy float64) Mob {
	return newMob(KindLifeBox, cx, cy, LifeBoxWidth, LifeBoxHeight, 2)
}

func (m *Mob) Bounds() Rect {
	return Rect{X: m.Pos.X, Y: m.Pos.Y, W: m.Width, H: m.Height}
}

// Update advances the mob one tick and deactivates it once it is fully
// past the screen edge it travels towards.
func (m *Mob) Update() {
	if !m.Active {
		return
	}
	if m.Kind == KindProjectile {
		m.Pos.X += m.Speed
		if m.Pos.X >= ScreenWidth {
			m.Active = false
		}
		return
	}
	m.Pos.X -= m.Speed
	if m.Pos.X+m.Width <= 0 {
		m.Active = false
	}
}

// Boss is the level 3 enemy. It takes BossHealth hits to defeat.
type Boss struct {
	Mob
	Health int
}

func NewBoss(cx, cy float64) *Boss {
	return &Boss{
		Mob:    newMob(KindBigEnemy, cx, cy, BossWidth, BossHeight, 1),
		Health: BossHealth,
	}
}

func (b *Boss) TakeDamage() {
	b.Health--
	if b.Health <= 0 {
		b.Active = false
	}
}

// updateMobs advances every mob and drops the inactive ones in place.
func updateMobs(mobs []Mob) []Mob {
	for i := range mobs {
		mobs[i].Update()
	}
	return compact(mobs)
}

func compact(mobs []Mob) []Mob {
	active := mobs[:0]
	for i := range mobs {
		if mobs[i].Active {
			active = append(active, mobs[i])
		}
	}
	return active
}
