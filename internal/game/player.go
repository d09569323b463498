package game

const (
	playerSpeed     = 5.0
	playerJumpPower = 15.0
	playerGravity   = 1.0

	SpawnX = ScreenWidth / 2
	SpawnY = ScreenHeight - 60
)

type Player struct {
	Pos      Vec2 // Top-left corner
	Vel      Vec2
	Width    float64
	Height   float64
	OnGround bool
	Lives    int
}

func NewPlayer() Player {
	p := Player{
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Lives:  MaxLives,
	}
	p.Respawn()
	return p
}

// Respawn centers the player on the spawn point. Velocity is kept.
func (p *Player) Respawn() {
	p.Pos = Vec2{X: SpawnX - p.Width/2, Y: SpawnY - p.Height/2}
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Update applies one tick of movement, jumping, gravity, platform landing
// and screen clamping.
func (p *Player) Update(in Input, platforms []Platform) {
	// Opposite directions cancel out
	if in.Left {
		p.Pos.X -= playerSpeed
	}
	if in.Right {
		p.Pos.X += playerSpeed
	}

	if in.Jump && p.OnGround {
		p.Vel.Y = -playerJumpPower
		p.OnGround = false
	}

	p.Vel.Y += playerGravity
	p.Pos.Y += p.Vel.Y

	// Landing only counts while falling; stacked overlaps resolve in order
	p.OnGround = false
	for _, platform := range platforms {
		if p.Vel.Y > 0 && p.Bounds().Intersects(platform.Bounds()) {
			p.Pos.Y = platform.Y - p.Height
			p.Vel.Y = 0
			p.OnGround = true
		}
	}

	if p.Pos.X < 0 {
		p.Pos.X = 0
	}
	if p.Pos.X+p.Width > ScreenWidth {
		p.Pos.X = ScreenWidth - p.Width
	}
	if p.Pos.Y+p.Height > ScreenHeight {
		p.Pos.Y = ScreenHeight - p.Height
		p.OnGround = true
	}
	if p.Pos.Y < UpperBound {
		p.Pos.Y = UpperBound
	}
}
