package game

import (
	"math"
	"testing"

	"github.com/mkovrin/crystal-drift/internal/config"
	"github.com/mkovrin/crystal-drift/internal/core"
)

const testDt = 1.0 / 60.0

// newPlayingSession returns a session already in the playing state with a
// calm field: no enemies, so tests control exactly what collides.
func newPlayingSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultDriftConfig(), 1, 80, 22)
	s.Start()
	if s.State() != StatePlaying {
		t.Fatalf("expected playing after Start, got %v", s.State())
	}
	s.enemies = s.enemies[:0]
	return s
}

// idleInput targets the player's own position so steering stays settled.
func idleInput(s *Session) core.InputFrame {
	in := core.NewInputFrame()
	in.Target = s.player.Pos
	return in
}

func TestDtClamped(t *testing.T) {
	s := newPlayingSession(t)
	s.bullets = append(s.bullets, Bullet{
		Pos: core.Vec2{X: 40, Y: 11}, Vel: core.Vec2{X: 10}, Radius: bulletRadius, TTL: 10,
	})

	// A huge stalled-frame dt must be clamped to 33ms: the bullet moves
	// at most 10 * 0.033 cells.
	s.Advance(5.0, idleInput(s))

	if s.bullets[0].Pos.X > 40+10*maxDt+1e-9 {
		t.Errorf("dt not clamped: bullet at %v", s.bullets[0].Pos)
	}
}

func TestBulletRemovedAfterExactTTL(t *testing.T) {
	s := newPlayingSession(t)
	s.bullets = append(s.bullets, Bullet{
		Pos: core.Vec2{X: 40, Y: 11}, Vel: core.Vec2{X: 1}, Radius: bulletRadius, TTL: testDt,
	})

	s.Advance(testDt, idleInput(s))

	if len(s.bullets) != 0 {
		t.Errorf("bullet with ttl == dt should be removed after one advance, %d left", len(s.bullets))
	}
}

func TestBulletRemovedOutOfBounds(t *testing.T) {
	s := newPlayingSession(t)
	s.bullets = append(s.bullets, Bullet{
		Pos: core.Vec2{X: 81.9, Y: 11}, Vel: core.Vec2{X: 60}, Radius: bulletRadius, TTL: 10,
	})

	s.Advance(testDt, idleInput(s))

	if len(s.bullets) != 0 {
		t.Error("bullet past the expanded margin should be removed")
	}
}

func TestSteeringSettles(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 40, Y: 11}
	s.player.Vel = core.Vec2{X: 10, Y: 0}

	in := core.NewInputFrame()
	in.Target = s.player.Pos

	prev := s.player.Vel.Len()
	for i := 0; i < 60; i++ {
		in.Target = s.player.Pos // keep target pinned on the ship
		s.Advance(testDt, in)
		cur := s.player.Vel.Len()
		if cur > prev+1e-9 {
			t.Fatalf("tick %d: velocity magnitude increased %v -> %v", i, prev, cur)
		}
		prev = cur
	}

	if prev > 0.5 {
		t.Errorf("velocity should decay toward zero, still %v after 60 ticks", prev)
	}
}

func TestSteeringSpeedClamp(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 5, Y: 11}

	in := core.NewInputFrame()
	in.Target = core.Vec2{X: 75, Y: 11}

	for i := 0; i < 120; i++ {
		s.Advance(testDt, in)
		if speed := s.player.Vel.Len(); speed > s.tuning.MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v exceeds max %v", i, speed, s.tuning.MaxSpeed)
		}
	}
}

func TestEdgeBounce(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 1.0, Y: 11}
	s.player.Vel = core.Vec2{X: -20, Y: 0}

	in := core.NewInputFrame()
	in.Target = s.player.Pos
	s.Advance(testDt, in)

	if s.player.Pos.X < s.player.Radius {
		t.Errorf("player should be clamped to the edge, at %v", s.player.Pos)
	}
	if s.player.Vel.X < 0 {
		t.Errorf("perpendicular velocity should be inverted, got %v", s.player.Vel)
	}
}

func TestFiringCooldownAndSound(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 40, Y: 11}

	in := core.NewInputFrame()
	in.Target = core.Vec2{X: 60, Y: 11}
	in.Fire = true

	s.Advance(testDt, in)

	if len(s.bullets) != 1 {
		t.Fatalf("expected 1 bullet after firing, got %d", len(s.bullets))
	}
	if s.player.Cooldown <= 0 {
		t.Error("cooldown should be reset after firing")
	}
	if b := s.bullets[0]; b.Vel.X <= 0 {
		t.Errorf("bullet should fly toward the target, vel %v", b.Vel)
	}

	found := false
	for _, ev := range s.DrainSounds() {
		if ev == SoundFire {
			found = true
		}
	}
	if !found {
		t.Error("firing should emit a fire sound event")
	}

	// Held fire within the cooldown window must not spawn another bullet.
	s.Advance(testDt, in)
	live := 0
	for _, b := range s.bullets {
		if !b.Dead {
			live++
		}
	}
	if live != 1 {
		t.Errorf("cooldown should suppress a second shot, got %d bullets", live)
	}
}

func TestFiringAimFallbackToHeading(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 40, Y: 11}
	s.player.Vel = core.Vec2{X: 0, Y: -8}

	in := core.NewInputFrame()
	in.Target = s.player.Pos // coincident with the player
	in.Fire = true

	s.Advance(testDt, in)

	if len(s.bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(s.bullets))
	}
	if s.bullets[0].Vel.Y >= 0 {
		t.Errorf("bullet should follow the ship's heading, vel %v", s.bullets[0].Vel)
	}
}

func TestBulletEnemyCollisionFirstMatchWins(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 5, Y: 5}
	s.crystals = s.crystals[:0] // no pickups polluting the score

	// One enemy, two overlapping bullets: only one bullet is consumed.
	s.enemies = append(s.enemies, Enemy{
		Pos: core.Vec2{X: 60, Y: 11}, Radius: enemyRadius, Kind: Wanderer,
		WanderTarget: core.Vec2{X: 60, Y: 11},
	})
	s.bullets = append(s.bullets,
		Bullet{Pos: core.Vec2{X: 60, Y: 11}, Radius: bulletRadius, TTL: 1},
		Bullet{Pos: core.Vec2{X: 60, Y: 11}, Radius: bulletRadius, TTL: 1},
	)

	scoreBefore := s.score
	s.Advance(testDt, idleInput(s))

	if len(s.enemies) != 0 {
		t.Error("enemy should be destroyed")
	}
	if len(s.bullets) != 1 {
		t.Errorf("only the first bullet should be consumed, %d left", len(s.bullets))
	}
	if s.score != scoreBefore+s.cfg.Gameplay.EnemyPoints {
		t.Errorf("score awarded once: got %d, expected %d", s.score, scoreBefore+s.cfg.Gameplay.EnemyPoints)
	}
	if len(s.particles) == 0 {
		t.Error("destruction should spawn a particle burst")
	}
}

func TestPlayerHitLosesAtMostOneLifePerTick(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 40, Y: 11}
	s.player.Invuln = 0

	// Three enemies stacked on the player at once.
	for i := 0; i < 3; i++ {
		s.enemies = append(s.enemies, Enemy{
			Pos: s.player.Pos, Radius: enemyRadius, Kind: Wanderer,
			WanderTarget: s.player.Pos,
		})
	}

	livesBefore := s.lives
	s.Advance(testDt, idleInput(s))

	if s.lives != livesBefore-1 {
		t.Errorf("simultaneous overlaps must cost exactly one life: %d -> %d", livesBefore, s.lives)
	}
	if s.player.Invuln <= 0 {
		t.Error("invulnerability should be reset on hit")
	}
}

func TestInvulnerabilitySuppressesHits(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 40, Y: 11}
	s.player.Invuln = 1.0
	s.enemies = append(s.enemies, Enemy{
		Pos: s.player.Pos, Radius: enemyRadius, Kind: Wanderer, WanderTarget: s.player.Pos,
	})

	livesBefore := s.lives
	s.Advance(testDt, idleInput(s))

	if s.lives != livesBefore {
		t.Errorf("invulnerable player must not lose a life: %d -> %d", livesBefore, s.lives)
	}
}

func TestLastLifeGameOverSameTick(t *testing.T) {
	s := newPlayingSession(t)
	s.lives = 1
	s.player.Pos = core.Vec2{X: 40, Y: 11}
	s.player.Invuln = 0
	s.enemies = append(s.enemies, Enemy{
		Pos: s.player.Pos, Radius: enemyRadius, Kind: Wanderer, WanderTarget: s.player.Pos,
	})

	s.Advance(testDt, idleInput(s))

	if s.State() != StateGameOver {
		t.Errorf("expected gameover within the same tick, got %v", s.State())
	}
	if s.lives != 0 {
		t.Errorf("lives should be exactly 0, got %d", s.lives)
	}
}

func TestCrystalPickup(t *testing.T) {
	s := newPlayingSession(t)
	before := s.liveCrystals()
	s.player.Pos = s.crystals[0].Pos

	scoreBefore := s.score
	s.Advance(testDt, idleInput(s))

	if s.liveCrystals() != before-1 {
		t.Errorf("crystal count should drop by one: %d -> %d", before, s.liveCrystals())
	}
	if s.score != scoreBefore+s.cfg.Gameplay.CrystalPoints {
		t.Errorf("pickup should award %d points", s.cfg.Gameplay.CrystalPoints)
	}
}

// collectAllCrystals teleports the player onto each remaining crystal,
// advancing one tick per pickup position.
func collectAllCrystals(t *testing.T, s *Session) {
	t.Helper()
	for guard := 0; s.liveCrystals() > 0; guard++ {
		if guard > 100 {
			t.Fatal("failed to collect all crystals")
		}
		for i := range s.crystals {
			if !s.crystals[i].Dead {
				s.player.Pos = s.crystals[i].Pos
				break
			}
		}
		s.player.Vel = core.Vec2{}
		s.Advance(testDt, idleInput(s))
	}
}

func TestGateOpensWhenFieldCleared(t *testing.T) {
	s := newPlayingSession(t)

	if s.gate.Open {
		t.Fatal("gate must start closed")
	}

	collectAllCrystals(t, s)

	if !s.gate.Open {
		t.Error("gate should open once the last crystal is collected")
	}

	events := s.DrainSounds()
	found := false
	for _, ev := range events {
		if ev == SoundGateOpen {
			found = true
		}
	}
	if !found {
		t.Error("gate opening should emit a sound event")
	}

	// Once open, the gate stays open for the rest of the level.
	for i := 0; i < 30; i++ {
		s.player.Pos = core.Vec2{X: 70, Y: 20} // away from the gate
		s.Advance(testDt, idleInput(s))
		if !s.gate.Open {
			t.Fatal("gate.Open must be monotonic within a level")
		}
	}
}

func TestNoSameTickGateAdvance(t *testing.T) {
	s := newPlayingSession(t)

	// Leave exactly one crystal, placed right on the gate.
	s.crystals = s.crystals[:1]
	s.crystals[0].Pos = s.gate.Pos
	s.player.Pos = s.gate.Pos
	s.player.Vel = core.Vec2{}

	s.Advance(testDt, idleInput(s))

	if s.level != 1 {
		t.Fatalf("collecting the last crystal at the gate must not advance the level same tick, level = %d", s.level)
	}
	if !s.gate.Open {
		t.Fatal("gate should have opened")
	}

	// The next tick, still overlapping, advances.
	s.player.Pos = s.gate.Pos
	s.Advance(testDt, idleInput(s))
	if s.level != 2 {
		t.Errorf("expected advance on the following tick, level = %d", s.level)
	}
}

func TestLevelAdvanceReseedsEntities(t *testing.T) {
	s := newPlayingSession(t)
	cfg := s.cfg

	collectAllCrystals(t, s)

	scoreBefore := s.score
	s.player.Pos = s.gate.Pos
	s.player.Vel = core.Vec2{}
	s.Advance(testDt, idleInput(s))

	if s.level != 2 {
		t.Fatalf("expected level 2 after passing the gate, got %d", s.level)
	}
	if s.score != scoreBefore+cfg.Gameplay.GateBonus {
		t.Errorf("gate bonus not awarded: %d -> %d", scoreBefore, s.score)
	}
	if got, want := len(s.crystals), crystalCount(cfg.Spawn.BaseCrystals, 2); got != want {
		t.Errorf("level 2 crystals = %d, expected %d", got, want)
	}
	if got, want := len(s.enemies), enemyCount(cfg.Spawn.BaseEnemies, 2); got != want {
		t.Errorf("level 2 enemies = %d, expected %d", got, want)
	}
	if s.gate.Open {
		t.Error("new level's gate should start closed")
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := NewSession(config.DefaultDriftConfig(), 9, 80, 22)
	s.Start()

	in := core.NewInputFrame()
	in.Fire = true
	prev := s.score
	for i := 0; i < 600; i++ {
		in.Target = core.Vec2{X: float64(i % 80), Y: float64(i % 22)}
		s.Advance(testDt, in)
		if s.score < prev {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev, s.score)
		}
		prev = s.score
		if s.State() == StateGameOver {
			break
		}
	}
}

func TestLivesBoundedAndNonIncreasing(t *testing.T) {
	s := NewSession(config.DefaultDriftConfig(), 11, 80, 22)
	s.Start()
	initial := s.lives

	in := core.NewInputFrame()
	prev := s.lives
	for i := 0; i < 1200; i++ {
		in.Target = core.Vec2{X: 40, Y: 11}
		s.Advance(testDt, in)
		if s.lives > prev {
			t.Fatalf("tick %d: lives increased %d -> %d", i, prev, s.lives)
		}
		if prev-s.lives > 1 {
			t.Fatalf("tick %d: lost more than one life in a tick: %d -> %d", i, prev, s.lives)
		}
		if s.lives < 0 || s.lives > initial {
			t.Fatalf("tick %d: lives %d outside [0, %d]", i, s.lives, initial)
		}
		prev = s.lives
		if s.State() == StateGameOver {
			break
		}
	}
}

func TestEnemyTTLDecrementsWithoutRemoval(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 5, Y: 5}
	s.enemies = append(s.enemies, Enemy{
		Pos: core.Vec2{X: 70, Y: 18}, Radius: enemyRadius, Kind: Wanderer,
		WanderTarget: core.Vec2{X: 70, Y: 18},
		TTL:          2 * testDt,
	})

	for i := 0; i < 10; i++ {
		s.player.Pos = core.Vec2{X: 5, Y: 5}
		s.player.Vel = core.Vec2{}
		s.Advance(testDt, idleInput(s))
	}

	if len(s.enemies) != 1 {
		t.Fatalf("enemy expiry is not enforced; enemy should survive, got %d", len(s.enemies))
	}
	if s.enemies[0].TTL > 0 {
		t.Error("enemy TTL should have decremented past zero")
	}
}

func TestEnemyWrapsAtMargin(t *testing.T) {
	s := newPlayingSession(t)
	s.player.Pos = core.Vec2{X: 5, Y: 5}
	s.enemies = append(s.enemies, Enemy{
		Pos: core.Vec2{X: 83.5, Y: 11}, Radius: enemyRadius, Kind: Wanderer,
		WanderTarget: core.Vec2{X: 100, Y: 11},
		Vel:          core.Vec2{X: 30, Y: 0},
		Speed:        30, TurnRate: 2,
	})

	s.Advance(testDt, idleInput(s))

	if s.enemies[0].Pos.X > 0 {
		t.Errorf("enemy should wrap to the opposite edge, at %v", s.enemies[0].Pos)
	}
}

func TestParticlesExpire(t *testing.T) {
	s := newPlayingSession(t)
	s.burst(core.Vec2{X: 40, Y: 11}, 8, core.ColorOrange)

	if len(s.particles) != 8 {
		t.Fatalf("burst should spawn 8 particles, got %d", len(s.particles))
	}

	// Max particle TTL is 0.8s; run well past it.
	for i := 0; i < 120; i++ {
		s.player.Pos = core.Vec2{X: 5, Y: 5}
		s.Advance(testDt, idleInput(s))
	}

	if len(s.particles) != 0 {
		t.Errorf("all particles should expire, %d left", len(s.particles))
	}
}

func TestParticleVelocityDamped(t *testing.T) {
	s := newPlayingSession(t)
	s.particles = append(s.particles, Particle{
		Pos: core.Vec2{X: 40, Y: 11}, Vel: core.Vec2{X: 10, Y: 0}, TTL: 1,
	})

	s.Advance(testDt, idleInput(s))

	want := 10 * particleDamping
	if math.Abs(s.particles[0].Vel.X-want) > 1e-9 {
		t.Errorf("particle velocity should be damped to %v, got %v", want, s.particles[0].Vel.X)
	}
}
