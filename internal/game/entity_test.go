package game

import (
	"math/rand"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMobsMoveAndDespawn(t *testing.T) {
	p := NewProjectile(ScreenWidth-20, 100)
	for i := 0; i < 3 && p.Active; i++ {
		p.Update()
	}
	if p.Active {
		t.Errorf("Projectile should be gone past the right edge, at x %v", p.Pos.X)
	}

	e := NewEnemy(30, 100, 5)
	startX := e.Pos.X
	e.Update()
	if e.Pos.X != startX-5 {
		t.Errorf("Enemy should move left by its speed, moved to %v", e.Pos.X)
	}
	for i := 0; i < 20 && e.Active; i++ {
		e.Update()
	}
	if e.Active {
		t.Errorf("Enemy should be gone past the left edge, at x %v", e.Pos.X)
	}
}

func TestMobsKeepTheirHeight(t *testing.T) {
	for _, m := range []Mob{NewGreenEnemy(400, 300), NewLifeBox(400, 300), NewEnemy(400, 300, 2)} {
		y := m.Pos.Y
		for i := 0; i < 10; i++ {
			m.Update()
		}
		if m.Pos.Y != y {
			t.Errorf("%s moved vertically from %v to %v", m.Kind, y, m.Pos.Y)
		}
	}
}

func TestUpdateMobsDropsInactive(t *testing.T) {
	mobs := []Mob{NewEnemy(400, 100, 2), NewEnemy(-100, 100, 2), NewEnemy(300, 100, 2)}
	mobs = updateMobs(mobs)
	if len(mobs) != 2 {
		t.Fatalf("Expected 2 mobs left, got %d", len(mobs))
	}
	for _, m := range mobs {
		if !m.Active {
			t.Error("Inactive mob left in slice")
		}
	}
}

func TestBossTakeDamage(t *testing.T) {
	b := NewBoss(ScreenWidth, ScreenHeight/2)
	for i := 0; i < BossHealth-1; i++ {
		b.TakeDamage()
		if !b.Active {
			t.Fatalf("Boss died after %d hits", i+1)
		}
	}
	b.TakeDamage()
	if b.Active || b.Health != 0 {
		t.Errorf("Expected dead boss with 0 health, got active %v health %d", b.Active, b.Health)
	}
}

func TestGeneratePlatformsAlwaysSeven(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		platforms := GeneratePlatforms(rand.New(rand.NewSource(seed)))
		if len(platforms) != 7 {
			t.Fatalf("seed %d: expected 7 platforms, got %d", seed, len(platforms))
		}

		grounds := 0
		for i, p := range platforms[:randomPlatforms] {
			if p.X < 50 || p.X > ScreenWidth-250 {
				t.Errorf("seed %d: platform %d x %v out of range", seed, i, p.X)
			}
			if want := ScreenHeight - 50 - float64(i)*jumpableDistance; p.Y != want {
				t.Errorf("seed %d: platform %d y %v, want %v", seed, i, p.Y, want)
			}
		}
		low := platforms[randomPlatforms]
		if low.X != 50 || low.Y != ScreenHeight-110 {
			t.Errorf("seed %d: unexpected low platform %+v", seed, low)
		}
		for _, p := range platforms {
			if p.Ground {
				grounds++
			}
		}
		ground := platforms[len(platforms)-1]
		if grounds != 1 || !ground.Ground || ground.Width != ScreenWidth {
			t.Errorf("seed %d: expected one full-width ground last, got %+v", seed, ground)
		}
	}
}
