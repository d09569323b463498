package game

// resolveCollisions runs every interaction check for one tick. The order is
// fixed; once the phase leaves Playing the remaining checks are skipped so
// a single tick can never cost more than the last life.
func (s *State) resolveCollisions() {
	s.shootEnemies()
	s.collectLifeBoxes()
	s.touchGreenEnemies()
	if s.Phase != Playing {
		return
	}
	s.shootGreenEnemies()
	s.shootBoss()
	if s.Phase != Playing {
		return
	}
	s.touchEnemies()
}

// hitAll deactivates every active target overlapping r and returns how
// many it removed. Projectiles are checked in order, so a target taken by
// an earlier projectile is not counted again.
func hitAll(r Rect, targets []Mob) int {
	n := 0
	for j := range targets {
		if targets[j].Active && r.Intersects(targets[j].Bounds()) {
			targets[j].Active = false
			n++
		}
	}
	return n
}

// shootEnemies removes each projectile together with every regular enemy
// it overlaps, scoring one kill per enemy. The boss is handled separately.
func (s *State) shootEnemies() {
	for i := range s.Projectiles {
		if !s.Projectiles[i].Active {
			continue
		}
		n := hitAll(s.Projectiles[i].Bounds(), s.Enemies)
		if n == 0 {
			continue
		}
		s.Projectiles[i].Active = false
		for ; n > 0; n-- {
			s.addKill()
		}
	}
	s.Projectiles = compact(s.Projectiles)
	s.Enemies = compact(s.Enemies)
}

// collectLifeBoxes consumes every box the player touches. Lives are capped
// at MaxLives; the box is used up either way.
func (s *State) collectLifeBoxes() {
	pb := s.Player.Bounds()
	for i := range s.LifeBoxes {
		if s.LifeBoxes[i].Active && pb.Intersects(s.LifeBoxes[i].Bounds()) {
			s.LifeBoxes[i].Active = false
			if s.Player.Lives < MaxLives {
				s.Player.Lives++
			}
		}
	}
	s.LifeBoxes = compact(s.LifeBoxes)
}

// touchGreenEnemies costs one life on any contact and wipes every green
// enemy off the field.
func (s *State) touchGreenEnemies() {
	pb := s.Player.Bounds()
	for i := range s.GreenEnemies {
		if s.GreenEnemies[i].Active && pb.Intersects(s.GreenEnemies[i].Bounds()) {
			s.GreenEnemies = s.GreenEnemies[:0]
			s.loseLife()
			return
		}
	}
}

// shootGreenEnemies removes each projectile together with every green
// enemy it overlaps, advancing one level per green enemy up to the last
// level.
func (s *State) shootGreenEnemies() {
	for i := range s.Projectiles {
		if !s.Projectiles[i].Active {
			continue
		}
		n := hitAll(s.Projectiles[i].Bounds(), s.GreenEnemies)
		if n == 0 {
			continue
		}
		s.Projectiles[i].Active = false
		if level := min(s.Level+n, MaxLevel); level != s.Level {
			s.setLevel(level)
		}
	}
	s.Projectiles = compact(s.Projectiles)
	s.GreenEnemies = compact(s.GreenEnemies)
}

// shootBoss applies one point of damage per projectile touching the boss.
func (s *State) shootBoss() {
	if s.Level < MaxLevel || s.Boss == nil {
		return
	}
	bb := s.Boss.Bounds()
	for i := range s.Projectiles {
		if !s.Projectiles[i].Active || !s.Projectiles[i].Bounds().Intersects(bb) {
			continue
		}
		s.Projectiles[i].Active = false
		s.Boss.TakeDamage()
		if !s.Boss.Active {
			s.Boss = nil
			s.win()
			break
		}
	}
	s.Projectiles = compact(s.Projectiles)
}

// touchEnemies costs one life when the player touches a regular enemy or
// the boss. The enemy survives; the player is sent back to the spawn point.
func (s *State) touchEnemies() {
	pb := s.Player.Bounds()
	hit := s.Boss != nil && pb.Intersects(s.Boss.Bounds())
	for i := range s.Enemies {
		if hit {
			break
		}
		hit = s.Enemies[i].Active && pb.Intersects(s.Enemies[i].Bounds())
	}
	if !hit {
		return
	}
	s.loseLife()
	if s.Phase == Playing {
		s.Player.Respawn()
	}
}
