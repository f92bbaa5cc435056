package game

import "github.com/mkovrin/crystal-drift/internal/core"

// EnemyKind selects the steering behavior of an enemy.
type EnemyKind int

const (
	// Chaser steers directly toward the player's current position.
	Chaser EnemyKind = iota
	// Wanderer steers toward a periodically re-randomized roam target.
	Wanderer
)

// String returns a human-readable name for the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case Chaser:
		return "chaser"
	case Wanderer:
		return "wanderer"
	default:
		return "unknown"
	}
}

// Player is the pointer-steered ship. Exactly one exists while playing;
// it is recreated on every level transition.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Cooldown float64 // seconds until the next shot is allowed
	Invuln   float64 // seconds of remaining invulnerability
}

// Enemy is a roaming hostile. WanderTarget is meaningful only for Wanderer.
type Enemy struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Radius       float64
	Kind         EnemyKind
	Speed        float64
	TurnRate     float64
	TTL          float64 // decrements every tick; expiry is not enforced
	WanderTarget core.Vec2
	Dead         bool
}

// Bullet is a player projectile.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	TTL    float64
	Dead   bool
}

// Crystal is a collectible. Spin is a cosmetic rotation phase.
type Crystal struct {
	Pos    core.Vec2
	Radius float64
	Spin   float64
	Dead   bool
}

// Gate is the level exit. Open is monotonic true once set for a level;
// Pulse is a cosmetic animation clock.
type Gate struct {
	Pos    core.Vec2
	Radius float64
	Open   bool
	Pulse  float64
}

// Particle is ephemeral burst debris. Purely cosmetic.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	TTL   float64
	Color core.Color
	Dead  bool
}
