// Package game holds the arcade core: entities, physics, spawning,
// collisions and the phase machine. It draws nothing and plays nothing;
// frontends read a Snapshot each tick and supply a Sound.
package game

import (
	"log"
	"math/rand"
)

const (
	MaxLevel = 3

	levelTwoKills   = 11
	levelThreeKills = 21
)

// Phase is the top-level state of a run.
type Phase int

const (
	Playing Phase = iota
	Paused
	GameOver
	Won
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Won:
		return "Won"
	default:
		return "Unknown"
	}
}

// Sound is the audio side of the game. Implementations must tolerate being
// called with no audio device.
type Sound interface {
	PlayerDied()
}

// NopSound is the silent Sound.
type NopSound struct{}

func (NopSound) PlayerDied() {}

// State owns every entity collection and counter of a run.
type State struct {
	Player       Player
	Platforms    []Platform
	Projectiles  []Mob
	Enemies      []Mob
	GreenEnemies []Mob
	LifeBoxes    []Mob
	Boss         *Boss // nil unless the boss is alive

	Score int    // One point per enemy shot
	Best  int    // Best score of this process, kept across restarts
	Kills int    // Regular enemies shot this run
	Level int    // 1..MaxLevel, never lowered within a run
	Phase Phase  // Playing, Paused, GameOver or Won
	Tick  uint64 // Ticks spent playing

	Spawner Spawner

	reachedTwo   bool // Kill threshold for level 2 already applied
	reachedThree bool // Kill threshold for level 3 already applied

	keys  edges      // Previous shoot/pause state for edge detection
	rng   *rand.Rand // Spawn positions and platform layout
	sound Sound
}

// NewState starts a run at level 1. A nil sound plays nothing.
func NewState(rng *rand.Rand, sound Sound) *State {
	if sound == nil {
		sound = NopSound{}
	}
	s := &State{rng: rng, sound: sound}
	s.Reset()
	return s
}

// Reset restores a fresh run: full lives, zero score and kills, level 1,
// empty collections and newly generated platforms. Best is kept.
func (s *State) Reset() {
	s.Player = NewPlayer()
	s.Platforms = GeneratePlatforms(s.rng)
	s.Projectiles = nil
	s.Enemies = nil
	s.GreenEnemies = nil
	s.LifeBoxes = nil
	s.Boss = nil
	s.Score = 0
	s.Kills = 0
	s.Level = 1
	s.reachedTwo = false
	s.reachedThree = false
	s.Spawner.Reset()
	s.Phase = Playing
}

// BigEnemyExists reports whether the boss is currently alive.
func (s *State) BigEnemyExists() bool {
	return s.Boss != nil
}

// Step advances the game by one tick for the given input snapshot.
func (s *State) Step(in Input) {
	if s.keys.pause(in) {
		switch s.Phase {
		case Playing:
			s.setPhase(Paused)
		case Paused:
			s.setPhase(Playing)
		}
	}

	switch s.Phase {
	case Paused, Won:
		return
	case GameOver:
		if in.Restart {
			log.Printf("restart after game over, score %d", s.Score)
			s.Reset()
		}
		return
	}

	s.Tick++
	s.advance(in)
	if s.Phase != Playing {
		return
	}
	s.resolveCollisions()
	if s.Phase != Playing {
		return
	}
	s.progress()
	s.Spawner.Run(s)
}

// advance moves every entity by one tick and fires a projectile on a fresh
// shoot press.
func (s *State) advance(in Input) {
	s.Player.Update(in, s.Platforms)
	s.Projectiles = updateMobs(s.Projectiles)
	s.Enemies = updateMobs(s.Enemies)
	s.GreenEnemies = updateMobs(s.GreenEnemies)
	s.LifeBoxes = updateMobs(s.LifeBoxes)

	if s.Boss != nil {
		s.Boss.Update()
		if !s.Boss.Active {
			// Off the left edge counts as no longer alive
			log.Printf("boss escaped")
			s.Boss = nil
			s.win()
			return
		}
	}

	if s.keys.shoot(in) {
		c := s.Player.Bounds().Center()
		s.Projectiles = append(s.Projectiles, NewProjectile(c.X, c.Y))
	}
}

// progress applies the kill-count level thresholds. Each threshold fires
// once and never lowers the level.
func (s *State) progress() {
	if !s.reachedTwo && s.Kills >= levelTwoKills {
		s.reachedTwo = true
		if s.Level < 2 {
			s.setLevel(2)
		}
	}
	if !s.reachedThree && s.Kills >= levelThreeKills {
		s.reachedThree = true
		if s.Level < 3 {
			s.setLevel(3)
		}
	}
}

func (s *State) addKill() {
	s.Score++
	s.Kills++
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

func (s *State) setLevel(level int) {
	log.Printf("level %d -> %d (kills %d)", s.Level, level, s.Kills)
	s.Level = level
}

func (s *State) setPhase(p Phase) {
	log.Printf("phase %s -> %s", s.Phase, p)
	s.Phase = p
}

// loseLife takes one life and ends the run when none are left.
func (s *State) loseLife() {
	s.Player.Lives--
	if s.Player.Lives > 0 {
		return
	}
	s.Player.Lives = 0
	s.setPhase(GameOver)
	s.sound.PlayerDied()
}

func (s *State) win() {
	s.setPhase(Won)
}
