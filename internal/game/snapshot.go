package game

// Snapshot captures the complete session state for rendering, determinism
// testing, and replay. The presentation adapter consumes it once per tick
// after Advance; it never mutates the session.
type Snapshot struct {
	Tick  uint64
	State State
	Level int
	Score int
	Lives int

	Player    Player
	Enemies   []Enemy
	Bullets   []Bullet
	Crystals  []Crystal
	Gate      Gate
	Particles []Particle
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   s.tick,
		State:  s.state,
		Level:  s.level,
		Score:  s.score,
		Lives:  s.lives,
		Player: s.player,
		Gate:   s.gate,
	}

	snap.Enemies = make([]Enemy, 0, len(s.enemies))
	for _, e := range s.enemies {
		if !e.Dead {
			snap.Enemies = append(snap.Enemies, e)
		}
	}
	snap.Bullets = make([]Bullet, 0, len(s.bullets))
	for _, b := range s.bullets {
		if !b.Dead {
			snap.Bullets = append(snap.Bullets, b)
		}
	}
	snap.Crystals = make([]Crystal, 0, len(s.crystals))
	for _, c := range s.crystals {
		if !c.Dead {
			snap.Crystals = append(snap.Crystals, c)
		}
	}
	snap.Particles = make([]Particle, 0, len(s.particles))
	for _, p := range s.particles {
		if !p.Dead {
			snap.Particles = append(snap.Particles, p)
		}
	}

	return snap
}
