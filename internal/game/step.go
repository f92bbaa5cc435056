package game

import (
	"math"

	"github.com/mkovrin/crystal-drift/internal/core"
)

const (
	bulletMargin       = 2.0  // bullets die this far outside the bounds
	enemyWrapMargin    = 3.0  // enemies wrap across this expanded margin
	wanderArriveRadius = 1.5  // distance at which a wanderer re-rolls its target
	crystalSpinRate    = 4.0  // radians per second, cosmetic
	particleDamping    = 0.88 // velocity multiplier per tick
)

// Advance runs one simulation tick. The ten stages execute in a fixed
// order, each feeding the next within the same tick. Outside of playing,
// only the gate's cosmetic pulse clock advances (and nothing at all while
// paused).
func (s *Session) Advance(dt float64, in core.InputFrame) {
	if dt > maxDt {
		dt = maxDt
	}
	if dt <= 0 {
		return
	}

	s.handleActions(in)

	switch s.state {
	case StatePaused:
		return
	case StateMenu, StateGameOver:
		s.gate.Pulse += dt
		return
	}

	s.tick++

	s.stepSteering(dt, in.Target)
	s.player.Invuln -= dt
	s.stepFiring(dt, in)
	s.stepBullets(dt)
	s.stepEnemies(dt)
	s.stepBulletHits()
	if s.stepPlayerHits() {
		// Lives exhausted: stop further processing this tick.
		s.sweep()
		return
	}
	s.stepCrystals(dt)
	s.stepGate(dt)
	s.stepParticles(dt)

	s.sweep()
}

// stepSteering drives the player as a critically-damped spring-mass system
// toward the pointer target. Inside the dead zone the positional error is
// suppressed to prevent oscillation; inside the tighter inner zone the
// residual velocity is damped so the ship settles.
func (s *Session) stepSteering(dt float64, target core.Vec2) {
	p := &s.player
	t := s.tuning
	phys := s.cfg.Physics

	errX := target.X - p.Pos.X
	errY := target.Y - p.Pos.Y
	distSq := errX*errX + errY*errY

	if distSq < t.DeadZone*t.DeadZone {
		errX, errY = 0, 0
		if distSq < phys.InnerZone*phys.InnerZone {
			p.Vel = p.Vel.Scale(phys.SettleDamping)
		}
	}

	ax := t.SpringKP*errX - t.SpringKD*p.Vel.X
	ay := t.SpringKP*errY - t.SpringKD*p.Vel.Y
	p.Vel.X += ax * dt
	p.Vel.Y += ay * dt

	speed := p.Vel.Len()
	if speed > t.MaxSpeed {
		p.Vel = p.Vel.Scale(t.MaxSpeed / speed)
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	// Soft bounce: clamp to the edge, invert the perpendicular velocity
	// component scaled by restitution.
	r := p.Radius
	if p.Pos.X < r {
		p.Pos.X = r
		if p.Vel.X < 0 {
			p.Vel.X = -p.Vel.X * phys.Restitution
		}
	} else if p.Pos.X > s.boundsW-r {
		p.Pos.X = s.boundsW - r
		if p.Vel.X > 0 {
			p.Vel.X = -p.Vel.X * phys.Restitution
		}
	}
	if p.Pos.Y < r {
		p.Pos.Y = r
		if p.Vel.Y < 0 {
			p.Vel.Y = -p.Vel.Y * phys.Restitution
		}
	} else if p.Pos.Y > s.boundsH-r {
		p.Pos.Y = s.boundsH - r
		if p.Vel.Y > 0 {
			p.Vel.Y = -p.Vel.Y * phys.Restitution
		}
	}
}

// stepFiring spawns a bullet aimed at the pointer target when fire intent
// is held and the cooldown has elapsed.
func (s *Session) stepFiring(dt float64, in core.InputFrame) {
	p := &s.player
	p.Cooldown -= dt

	if !in.Fire || p.Cooldown > 0 {
		return
	}

	dirX, dirY := core.Normalize(in.Target.X-p.Pos.X, in.Target.Y-p.Pos.Y)
	if dirX == 0 && dirY == 0 {
		// Target coincident with the player: fall back to current heading.
		dirX, dirY = core.Normalize(p.Vel.X, p.Vel.Y)
	}
	if dirX == 0 && dirY == 0 {
		dirY = -1
	}

	muzzle := p.Radius + s.cfg.Physics.MuzzleGap
	s.bullets = append(s.bullets, Bullet{
		Pos:    core.Vec2{X: p.Pos.X + dirX*muzzle, Y: p.Pos.Y + dirY*muzzle},
		Vel:    core.Vec2{X: dirX * s.tuning.BulletSpeed, Y: dirY * s.tuning.BulletSpeed},
		Radius: bulletRadius,
		TTL:    s.cfg.Physics.BulletTTL,
	})
	p.Cooldown = s.tuning.FireCooldown
	s.emit(SoundFire)
}

// stepBullets integrates bullets and marks expired or escaped ones dead.
func (s *Session) stepBullets(dt float64) {
	for i := range s.bullets {
		b := &s.bullets[i]
		if b.Dead {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.TTL -= dt
		if b.TTL <= 0 ||
			b.Pos.X < -bulletMargin || b.Pos.X > s.boundsW+bulletMargin ||
			b.Pos.Y < -bulletMargin || b.Pos.Y > s.boundsH+bulletMargin {
			b.Dead = true
		}
	}
}

// stepEnemies blends each enemy's velocity toward its desired direction
// and integrates, wrapping across an expanded margin.
func (s *Session) stepEnemies(dt float64) {
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Dead {
			continue
		}

		// TTL decrements but expiry is not enforced; enemies only leave
		// the field when shot or on level transition.
		e.TTL -= dt

		var goal core.Vec2
		switch e.Kind {
		case Chaser:
			goal = s.player.Pos
		case Wanderer:
			if core.DistanceSquared(e.Pos.X, e.Pos.Y, e.WanderTarget.X, e.WanderTarget.Y) <
				wanderArriveRadius*wanderArriveRadius {
				e.WanderTarget = s.randomWanderTarget()
			}
			goal = e.WanderTarget
		}

		ux, uy := core.Normalize(goal.X-e.Pos.X, goal.Y-e.Pos.Y)
		blend := core.ClampF(e.TurnRate*dt, 0, 1)
		e.Vel.X = core.Lerp(e.Vel.X, ux*e.Speed, blend)
		e.Vel.Y = core.Lerp(e.Vel.Y, uy*e.Speed, blend)

		e.Pos = e.Pos.Add(e.Vel.Scale(dt))

		// Wrap, not clamp: reappear on the opposite edge.
		if e.Pos.X < -enemyWrapMargin {
			e.Pos.X = s.boundsW + enemyWrapMargin
		} else if e.Pos.X > s.boundsW+enemyWrapMargin {
			e.Pos.X = -enemyWrapMargin
		}
		if e.Pos.Y < -enemyWrapMargin {
			e.Pos.Y = s.boundsH + enemyWrapMargin
		} else if e.Pos.Y > s.boundsH+enemyWrapMargin {
			e.Pos.Y = -enemyWrapMargin
		}
	}
}

// stepBulletHits resolves bullet-enemy collisions. The first overlapping
// bullet wins; at most one bullet is consumed per enemy per tick, so a
// single enemy can never be double-counted.
func (s *Session) stepBulletHits() {
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Dead {
			continue
		}
		for j := range s.bullets {
			b := &s.bullets[j]
			if b.Dead {
				continue
			}
			if !overlap(e.Pos, e.Radius, b.Pos, b.Radius) {
				continue
			}
			e.Dead = true
			b.Dead = true
			s.score += s.cfg.Gameplay.EnemyPoints
			s.burst(e.Pos, 10, core.ColorOrange)
			s.emit(SoundEnemyDown)
			break
		}
	}
}

// stepPlayerHits resolves player-enemy collisions. Resetting the
// invulnerability timer on the first hit gates the remaining iterations,
// so overlapping several enemies in one tick costs at most one life.
// Returns true when the session transitioned to game over.
func (s *Session) stepPlayerHits() bool {
	p := &s.player
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Dead {
			continue
		}
		if p.Invuln > 0 {
			continue
		}
		if !overlap(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}

		s.lives--
		p.Invuln = s.cfg.Gameplay.InvulnSeconds
		s.burst(p.Pos, 12, core.ColorBrightRed)
		s.emit(SoundPlayerHit)

		if s.lives <= 0 {
			s.lives = 0
			s.state = StateGameOver
			return true
		}
	}
	return false
}

// stepCrystals advances crystal spin and resolves pickups.
func (s *Session) stepCrystals(dt float64) {
	p := &s.player
	for i := range s.crystals {
		c := &s.crystals[i]
		if c.Dead {
			continue
		}
		c.Spin += crystalSpinRate * dt
		if overlap(p.Pos, p.Radius, c.Pos, c.Radius) {
			c.Dead = true
			s.score += s.cfg.Gameplay.CrystalPoints
			s.burst(c.Pos, 6, core.ColorBrightCyan)
			s.emit(SoundPickup)
		}
	}
}

// stepGate opens the gate once the last crystal is collected and advances
// the level on contact. The advance test only considers the gate's state
// from before this tick, so collecting the last crystal and passing
// through the gate can never happen in the same tick.
func (s *Session) stepGate(dt float64) {
	wasOpen := s.gate.Open
	if !wasOpen && s.liveCrystals() == 0 {
		s.gate.Open = true
		s.gate.Pulse = 0
		s.emit(SoundGateOpen)
	}
	s.gate.Pulse += dt

	if wasOpen && overlap(s.player.Pos, s.player.Radius, s.gate.Pos, s.gate.Radius) {
		s.score += s.cfg.Gameplay.GateBonus
		s.emit(SoundLevelAdvance)
		s.startLevel(s.level + 1)
	}
}

// stepParticles integrates burst debris with fixed per-tick damping.
func (s *Session) stepParticles(dt float64) {
	for i := range s.particles {
		pt := &s.particles[i]
		if pt.Dead {
			continue
		}
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		pt.Vel = pt.Vel.Scale(particleDamping)
		pt.TTL -= dt
		if pt.TTL <= 0 {
			pt.Dead = true
		}
	}
}

// burst emits a cluster of short-lived particles at pos.
func (s *Session) burst(pos core.Vec2, n int, color core.Color) {
	for i := 0; i < n; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 4 + s.rng.Float64()*10
		s.particles = append(s.particles, Particle{
			Pos:   pos,
			Vel:   core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			TTL:   0.4 + s.rng.Float64()*0.4,
			Color: color,
		})
	}
}

// liveCrystals counts collectibles still in play.
func (s *Session) liveCrystals() int {
	n := 0
	for i := range s.crystals {
		if !s.crystals[i].Dead {
			n++
		}
	}
	return n
}

// overlap reports whether two circles intersect.
func overlap(a core.Vec2, ar float64, b core.Vec2, br float64) bool {
	sum := ar + br
	return core.DistanceSquared(a.X, a.Y, b.X, b.Y) < sum*sum
}

// sweep compacts out dead entities once per tick, keeping iteration
// index-stable within the tick.
func (s *Session) sweep() {
	s.enemies = sweepEnemies(s.enemies)
	s.bullets = sweepBullets(s.bullets)
	s.crystals = sweepCrystals(s.crystals)
	s.particles = sweepParticles(s.particles)
}

func sweepEnemies(in []Enemy) []Enemy {
	out := in[:0]
	for _, e := range in {
		if !e.Dead {
			out = append(out, e)
		}
	}
	return out
}

func sweepBullets(in []Bullet) []Bullet {
	out := in[:0]
	for _, b := range in {
		if !b.Dead {
			out = append(out, b)
		}
	}
	return out
}

func sweepCrystals(in []Crystal) []Crystal {
	out := in[:0]
	for _, c := range in {
		if !c.Dead {
			out = append(out, c)
		}
	}
	return out
}

func sweepParticles(in []Particle) []Particle {
	out := in[:0]
	for _, p := range in {
		if !p.Dead {
			out = append(out, p)
		}
	}
	return out
}
