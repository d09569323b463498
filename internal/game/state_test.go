package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewStateInitialization(t *testing.T) {
	s, _ := newTestState(1)

	if s.Phase != Playing {
		t.Errorf("Expected Playing, got %s", s.Phase)
	}
	if s.Level != 1 || s.Score != 0 || s.Kills != 0 {
		t.Errorf("Expected level 1 score 0 kills 0, got %d %d %d", s.Level, s.Score, s.Kills)
	}
	if s.Player.Lives != MaxLives {
		t.Errorf("Expected %d lives, got %d", MaxLives, s.Player.Lives)
	}
	if len(s.Platforms) != 7 {
		t.Errorf("Expected 7 platforms, got %d", len(s.Platforms))
	}
	if s.BigEnemyExists() {
		t.Error("Boss should not exist at start")
	}
}

func TestNilSoundIsSilent(t *testing.T) {
	s := NewState(rand.New(rand.NewSource(1)), nil)
	s.Player.Lives = 1
	s.loseLife()
	if s.Phase != GameOver {
		t.Errorf("Expected GameOver, got %s", s.Phase)
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	s, _ := newTestState(5)
	for i := 0; i < 100; i++ {
		s.Step(Input{})
	}
	s.Step(Input{Pause: true})
	if s.Phase != Paused {
		t.Fatalf("Expected Paused, got %s", s.Phase)
	}
	before := s.Snapshot()
	spawner := s.Spawner
	vel := s.Player.Vel

	for i := 0; i < 300; i++ {
		s.Step(Input{Pause: true, Left: true, Jump: true, Shoot: i%2 == 0})
	}
	s.Step(Input{Left: true, Shoot: true})

	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Snapshot changed while paused")
	}
	if s.Spawner != spawner {
		t.Errorf("Spawn timers changed while paused: %+v -> %+v", spawner, s.Spawner)
	}
	if s.Player.Vel != vel {
		t.Errorf("Velocity changed while paused: %+v -> %+v", vel, s.Player.Vel)
	}

	s.Step(Input{Pause: true})
	if s.Phase != Playing {
		t.Fatalf("Expected Playing after second press, got %s", s.Phase)
	}
	tick := s.Tick
	s.Step(Input{})
	if s.Tick != tick+1 {
		t.Error("Game should advance after unpausing")
	}
}

func TestShootIsEdgeTriggered(t *testing.T) {
	s, _ := newTestState(1)
	for i := 0; i < 5; i++ {
		s.Step(Input{Shoot: true})
	}
	if len(s.Projectiles) != 1 {
		t.Fatalf("Expected 1 projectile while held, got %d", len(s.Projectiles))
	}

	s.Step(Input{})
	s.Step(Input{Shoot: true})
	if len(s.Projectiles) != 2 {
		t.Fatalf("Expected 2 projectiles after re-press, got %d", len(s.Projectiles))
	}

	c := s.Player.Bounds().Center()
	p := s.Projectiles[1].Bounds().Center()
	if p != c {
		t.Errorf("Expected projectile at player center %+v, got %+v", c, p)
	}
}

func TestLevelThresholds(t *testing.T) {
	s, _ := newTestState(1)

	s.Kills = 10
	s.progress()
	if s.Level != 1 {
		t.Fatalf("Expected level 1 at 10 kills, got %d", s.Level)
	}

	s.Kills = 11
	s.progress()
	if s.Level != 2 {
		t.Fatalf("Expected level 2 at 11 kills, got %d", s.Level)
	}

	s.Kills = 21
	s.progress()
	if s.Level != 3 {
		t.Fatalf("Expected level 3 at 21 kills, got %d", s.Level)
	}
}

func TestLevelThresholdsSurviveSkippedCounts(t *testing.T) {
	s, _ := newTestState(1)
	s.Kills = 12
	s.progress()
	if s.Level != 2 {
		t.Errorf("Expected level 2 after skipping 11, got %d", s.Level)
	}

	s.Kills = 25
	s.progress()
	if s.Level != 3 {
		t.Errorf("Expected level 3 after skipping 21, got %d", s.Level)
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	s, _ := newTestState(1)
	s.Level = 3 // Reached through green enemies
	s.Kills = 11
	s.progress()
	if s.Level != 3 {
		t.Errorf("Kill threshold lowered level to %d", s.Level)
	}
}

func TestKillReachingThresholdThroughStep(t *testing.T) {
	s, _ := newTestState(1)
	s.Kills = 10
	s.Score = 10
	s.Enemies = []Mob{NewEnemy(600, 150, 0)}
	s.Projectiles = []Mob{NewProjectile(590, 150)}

	s.Step(Input{})

	if s.Kills != 11 || s.Level != 2 {
		t.Errorf("Expected kills 11 and level 2, got %d and %d", s.Kills, s.Level)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	s, _ := newTestState(1)
	for i := 0; i < 700; i++ {
		s.Step(Input{})
	}
	s.Score = 7
	s.Best = 7
	s.Kills = 7
	s.Level = 2
	s.Projectiles = []Mob{NewProjectile(100, 100)}
	s.GreenEnemies = []Mob{NewGreenEnemy(700, 100)}
	s.Player.Lives = 1
	s.loseLife()
	if s.Phase != GameOver {
		t.Fatalf("Expected GameOver, got %s", s.Phase)
	}

	// Game over freezes play until restart
	tick := s.Tick
	s.Step(Input{Right: true})
	if s.Phase != GameOver || s.Tick != tick {
		t.Fatal("Game advanced during GameOver")
	}

	s.Step(Input{Restart: true})

	if s.Phase != Playing {
		t.Errorf("Expected Playing, got %s", s.Phase)
	}
	if s.Player.Lives != MaxLives || s.Score != 0 || s.Kills != 0 || s.Level != 1 {
		t.Errorf("Expected fresh counters, got lives %d score %d kills %d level %d",
			s.Player.Lives, s.Score, s.Kills, s.Level)
	}
	if len(s.Projectiles)+len(s.Enemies)+len(s.GreenEnemies)+len(s.LifeBoxes) != 0 {
		t.Error("Expected all dynamic collections empty")
	}
	if s.BigEnemyExists() {
		t.Error("Expected no boss after restart")
	}
	if len(s.Platforms) != 7 {
		t.Errorf("Expected 7 regenerated platforms, got %d", len(s.Platforms))
	}
	if s.Spawner != (Spawner{}) {
		t.Errorf("Expected spawn timers reset, got %+v", s.Spawner)
	}
	if s.Best != 7 {
		t.Errorf("Best score should survive restart, got %d", s.Best)
	}
	c := s.Player.Bounds().Center()
	if c.X != SpawnX || c.Y != SpawnY {
		t.Errorf("Expected player at spawn, got %+v", c)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	s, _ := newTestState(1)
	s.Score = 4
	s.Step(Input{Restart: true})
	if s.Score != 4 {
		t.Error("Restart should only apply after game over")
	}
}

func TestWonIsTerminal(t *testing.T) {
	s, _ := newTestState(1)
	s.Phase = Won
	tick := s.Tick
	s.Step(Input{Restart: true})
	s.Step(Input{Pause: true})
	if s.Phase != Won || s.Tick != tick {
		t.Errorf("Expected frozen Won phase, got %s", s.Phase)
	}
}

func TestEscapedBossEndsRun(t *testing.T) {
	s, _ := newTestState(1)
	s.Level = 3
	s.Spawner.Run(s)
	// Park the boss just short of leaving the left edge
	s.Boss.Pos.X = -BossWidth + 1

	s.Step(Input{})

	if s.Phase != Won {
		t.Fatalf("Expected Won after the boss escaped, got %s", s.Phase)
	}
	if s.BigEnemyExists() {
		t.Error("Escaped boss should be gone")
	}
}

func TestOneBossPerRun(t *testing.T) {
	s, _ := newTestState(3)
	s.Level = 3

	spawned := 0
	for i := 0; i < 2000 && s.Phase == Playing; i++ {
		had := s.Boss
		s.Step(Input{})
		if s.Boss != nil && s.Boss != had {
			spawned++
		}
	}
	if spawned != 1 {
		t.Errorf("Expected exactly one boss in the run, got %d", spawned)
	}
	if s.Phase != Won {
		t.Errorf("Expected the escaped boss to end the run, got %s", s.Phase)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, sound := newTestState(42)

	for i := 0; i < 20000; i++ {
		in := Input{
			Left:    rng.Intn(3) == 0,
			Right:   rng.Intn(2) == 0,
			Jump:    rng.Intn(10) == 0,
			Shoot:   rng.Intn(2) == 0,
			Restart: rng.Intn(50) == 0,
		}
		phase := s.Phase
		level := s.Level
		score := s.Score
		kills := s.Kills
		s.Step(in)

		if s.Player.Lives < 0 || s.Player.Lives > MaxLives {
			t.Fatalf("tick %d: lives %d out of range", i, s.Player.Lives)
		}
		if (s.Player.Lives == 0) != (s.Phase == GameOver) {
			t.Fatalf("tick %d: lives %d with phase %s", i, s.Player.Lives, s.Phase)
		}
		if len(s.LifeBoxes) > MaxLifeBoxes {
			t.Fatalf("tick %d: %d life boxes", i, len(s.LifeBoxes))
		}
		if phase == Playing && s.Phase != GameOver {
			if s.Level < level || s.Score < score || s.Kills < kills {
				t.Fatalf("tick %d: counters went backwards", i)
			}
		}
		if s.Phase == Won {
			break
		}
	}
	if sound.died == 0 {
		t.Log("run finished without a game over")
	}
}
