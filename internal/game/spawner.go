package game

import "log"

const (
	enemySpawnInterval   = 60  // 1s at 60 ticks per second
	greenSpawnInterval   = 900 // 15s
	lifeBoxSpawnInterval = 600 // 10s

	MaxLifeBoxes = 3

	levelOneEnemySpeed = 2.0
	levelTwoEnemySpeed = 5.0
)

// Spawner decides when new enemies and pickups enter from the right edge.
// Its counters only advance while the game is being played.
type Spawner struct {
	EnemyTimer   int  // Ticks since the last regular enemy
	GreenTimer   int  // Ticks since the last green enemy
	LifeBoxTimer int  // Ticks since the last life box
	BossSpawned  bool // At most one boss per run
}

// Run performs one tick of spawning against s.
func (sp *Spawner) Run(s *State) {
	switch s.Level {
	case 1, 2:
		speed := levelOneEnemySpeed
		if s.Level == 2 {
			speed = levelTwoEnemySpeed
		}
		sp.EnemyTimer++
		if sp.EnemyTimer >= enemySpawnInterval {
			s.Enemies = append(s.Enemies, NewEnemy(ScreenWidth, sp.enemyY(s), speed))
			sp.EnemyTimer = 0
		}
	case 3:
		if !sp.BossSpawned {
			sp.BossSpawned = true
			s.Boss = NewBoss(ScreenWidth, ScreenHeight/2)
			log.Printf("boss spawned")
		}
	}

	if s.Level < 3 {
		sp.GreenTimer++
		if sp.GreenTimer >= greenSpawnInterval {
			s.GreenEnemies = append(s.GreenEnemies, NewGreenEnemy(ScreenWidth, sp.enemyY(s)))
			sp.GreenTimer = 0
		}
	}

	// The timer keeps running while the cap is reached, so a box appears
	// as soon as one is picked up or leaves the screen.
	sp.LifeBoxTimer++
	if sp.LifeBoxTimer >= lifeBoxSpawnInterval && len(s.LifeBoxes) < MaxLifeBoxes {
		y := float64(randRange(s.rng, UpperBound+50, ScreenHeight-100))
		s.LifeBoxes = append(s.LifeBoxes, NewLifeBox(ScreenWidth, y))
		sp.LifeBoxTimer = 0
	}
}

func (sp *Spawner) enemyY(s *State) float64 {
	return float64(randRange(s.rng, UpperBound, ScreenHeight-100))
}

func (sp *Spawner) Reset() {
	*sp = Spawner{}
}
