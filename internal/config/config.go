// Package config provides YAML-based game configuration loading for
// Crystal Drift.
package config

// DriftConfig contains all configuration for the game.
type DriftConfig struct {
	Physics  DriftPhysics  `yaml:"physics"`
	Spawn    DriftSpawn    `yaml:"spawn"`
	Enemies  DriftEnemies  `yaml:"enemies"`
	Gameplay DriftGameplay `yaml:"gameplay"`
}

// DriftPhysics defines steering and projectile parameters.
type DriftPhysics struct {
	SpringKP      float64 `yaml:"spring_kp"`      // steering spring constant
	SpringKD      float64 `yaml:"spring_kd"`      // steering damping constant
	DeadZone      float64 `yaml:"dead_zone"`      // radius where steering error is suppressed
	InnerZone     float64 `yaml:"inner_zone"`     // radius where residual velocity is damped
	SettleDamping float64 `yaml:"settle_damping"` // velocity factor inside the inner zone
	MaxSpeed      float64 `yaml:"max_speed"`      // cells per second
	Restitution   float64 `yaml:"restitution"`    // edge bounce factor
	BulletSpeed   float64 `yaml:"bullet_speed"`
	BulletTTL     float64 `yaml:"bullet_ttl"`
	FireCooldown  float64 `yaml:"fire_cooldown"`
	MuzzleGap     float64 `yaml:"muzzle_gap"`
}

// DriftSpawn defines level seeding parameters.
type DriftSpawn struct {
	BaseCrystals int     `yaml:"base_crystals"`
	BaseEnemies  int     `yaml:"base_enemies"`
	MinSpacing   float64 `yaml:"min_spacing"`
	EdgePadding  float64 `yaml:"edge_padding"`
}

// DriftEnemies defines level-scaled enemy stat ranges.
// Chaser speed scales faster with level; wanderer turn agility scales faster.
type DriftEnemies struct {
	ChaserSpeedBase       float64 `yaml:"chaser_speed_base"`
	ChaserSpeedPerLevel   float64 `yaml:"chaser_speed_per_level"`
	ChaserTurnBase        float64 `yaml:"chaser_turn_base"`
	ChaserTurnPerLevel    float64 `yaml:"chaser_turn_per_level"`
	WandererSpeedBase     float64 `yaml:"wanderer_speed_base"`
	WandererSpeedPerLevel float64 `yaml:"wanderer_speed_per_level"`
	WandererTurnBase      float64 `yaml:"wanderer_turn_base"`
	WandererTurnPerLevel  float64 `yaml:"wanderer_turn_per_level"`
	TTL                   float64 `yaml:"ttl"`
}

// DriftGameplay defines session parameters.
type DriftGameplay struct {
	Lives         int     `yaml:"lives"`
	InvulnSeconds float64 `yaml:"invuln_seconds"`
	EnemyPoints   int     `yaml:"enemy_points"`
	CrystalPoints int     `yaml:"crystal_points"`
	GateBonus     int     `yaml:"gate_bonus"`
}
