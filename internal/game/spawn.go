package game

import (
	"math"
	"math/rand"

	"github.com/mkovrin/crystal-drift/internal/core"
)

// placeAttempts bounds the rejection sampling loop.
const placeAttempts = 1200

// obstacle is anything a new placement must keep clear of.
type obstacle struct {
	pos    core.Vec2
	radius float64
}

// placeAvoiding rejection-samples a point uniformly within the padded
// bounds whose distance to every obstacle center exceeds minDist plus the
// obstacle's radius. Falls back to the bounds center when the attempt
// budget runs out. Deterministic given a seeded rng.
func placeAvoiding(rng *rand.Rand, w, h, padding, minDist float64, obstacles []obstacle) core.Vec2 {
	for attempt := 0; attempt < placeAttempts; attempt++ {
		p := core.Vec2{
			X: padding + rng.Float64()*(w-2*padding),
			Y: padding + rng.Float64()*(h-2*padding),
		}

		ok := true
		for _, o := range obstacles {
			keep := minDist + o.radius
			if core.DistanceSquared(p.X, p.Y, o.pos.X, o.pos.Y) <= keep*keep {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return core.Vec2{X: w / 2, Y: h / 2}
}

// crystalCount returns the collectible count for a level.
func crystalCount(base, level int) int {
	return base + int(math.Floor(float64(level-1)*1.2))
}

// enemyCount returns the enemy count for a level.
func enemyCount(base, level int) int {
	return base + int(math.Floor(float64(level-1)*1.5))
}

// edgeSpawnPos picks a point on a random edge of the bounds, offset
// outside the visible area so enemies drift in rather than pop in.
func edgeSpawnPos(rng *rand.Rand, w, h float64) core.Vec2 {
	const offset = 3.0
	switch rng.Intn(4) {
	case 0: // top
		return core.Vec2{X: rng.Float64() * w, Y: -offset}
	case 1: // bottom
		return core.Vec2{X: rng.Float64() * w, Y: h + offset}
	case 2: // left
		return core.Vec2{X: -offset, Y: rng.Float64() * h}
	default: // right
		return core.Vec2{X: w + offset, Y: rng.Float64() * h}
	}
}

// startLevel seeds all level entities for level n. The player is recreated
// at the spawn point; bullets and particles from the previous level are
// discarded.
func (s *Session) startLevel(n int) {
	s.level = n

	spawn := core.Vec2{X: s.boundsW / 2, Y: s.boundsH * 0.75}
	s.player = Player{
		Pos:    spawn,
		Radius: playerRadius,
	}

	// Gate near top-center, jittered, away from the spawn point.
	s.gate = Gate{
		Pos: core.Vec2{
			X: s.boundsW*0.5 + (s.rng.Float64()-0.5)*s.boundsW*0.2,
			Y: core.ClampF(s.boundsH*0.12, 2, s.boundsH),
		},
		Radius: gateRadius,
	}

	pad := s.cfg.Spawn.EdgePadding
	minDist := s.cfg.Spawn.MinSpacing

	// Crystals keep clear of the player spawn, the gate, and each other.
	obstacles := []obstacle{
		{pos: spawn, radius: s.player.Radius + 2},
		{pos: s.gate.Pos, radius: s.gate.Radius},
	}
	nCrystals := crystalCount(s.cfg.Spawn.BaseCrystals, n)
	s.crystals = make([]Crystal, 0, nCrystals)
	for i := 0; i < nCrystals; i++ {
		pos := placeAvoiding(s.rng, s.boundsW, s.boundsH, pad, minDist, obstacles)
		s.crystals = append(s.crystals, Crystal{
			Pos:    pos,
			Radius: crystalRadius,
			Spin:   s.rng.Float64() * 2 * math.Pi,
		})
		obstacles = append(obstacles, obstacle{pos: pos, radius: crystalRadius})
	}

	nEnemies := enemyCount(s.cfg.Spawn.BaseEnemies, n)
	s.enemies = make([]Enemy, 0, nEnemies)
	for i := 0; i < nEnemies; i++ {
		s.enemies = append(s.enemies, s.rollEnemy(n))
	}

	s.bullets = s.bullets[:0]
	s.particles = s.particles[:0]
}

// rollEnemy creates one enemy with level-scaled stats. The chaser's speed
// grows faster with level; the wanderer's turn agility grows faster.
func (s *Session) rollEnemy(level int) Enemy {
	ec := s.cfg.Enemies
	lv := float64(level - 1)

	e := Enemy{
		Pos:    edgeSpawnPos(s.rng, s.boundsW, s.boundsH),
		Radius: enemyRadius,
		TTL:    ec.TTL,
	}

	if s.rng.Intn(2) == 0 {
		e.Kind = Chaser
		e.Speed = ec.ChaserSpeedBase + lv*ec.ChaserSpeedPerLevel + s.rng.Float64()*2
		e.TurnRate = ec.ChaserTurnBase + lv*ec.ChaserTurnPerLevel + s.rng.Float64()*0.3
	} else {
		e.Kind = Wanderer
		e.Speed = ec.WandererSpeedBase + lv*ec.WandererSpeedPerLevel + s.rng.Float64()*2
		e.TurnRate = ec.WandererTurnBase + lv*ec.WandererTurnPerLevel + s.rng.Float64()*0.5
		e.WanderTarget = s.randomWanderTarget()
	}
	return e
}

// randomWanderTarget picks a roam point inside the padded bounds.
func (s *Session) randomWanderTarget() core.Vec2 {
	pad := s.cfg.Spawn.EdgePadding
	return core.Vec2{
		X: pad + s.rng.Float64()*(s.boundsW-2*pad),
		Y: pad + s.rng.Float64()*(s.boundsH-2*pad),
	}
}
