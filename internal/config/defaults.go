package config

import (
	_ "embed"
)

//go:embed defaults/drift.yaml
var defaultDriftYAML []byte

// DefaultDriftConfig returns the default game configuration.
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		Physics: DriftPhysics{
			SpringKP:      26.0,
			SpringKD:      10.0,
			DeadZone:      1.6,
			InnerZone:     0.5,
			SettleDamping: 0.82,
			MaxSpeed:      34.0,
			Restitution:   0.45,
			BulletSpeed:   55.0,
			BulletTTL:     1.4,
			FireCooldown:  0.18,
			MuzzleGap:     0.8,
		},
		Spawn: DriftSpawn{
			BaseCrystals: 8,
			BaseEnemies:  3,
			MinSpacing:   4.0,
			EdgePadding:  2.0,
		},
		Enemies: DriftEnemies{
			ChaserSpeedBase:       9.0,
			ChaserSpeedPerLevel:   1.6,
			ChaserTurnBase:        1.6,
			ChaserTurnPerLevel:    0.08,
			WandererSpeedBase:     7.0,
			WandererSpeedPerLevel: 0.7,
			WandererTurnBase:      2.2,
			WandererTurnPerLevel:  0.3,
			TTL:                   45.0,
		},
		Gameplay: DriftGameplay{
			Lives:         3,
			InvulnSeconds: 1.5,
			EnemyPoints:   25,
			CrystalPoints: 10,
			GateBonus:     50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDriftYAML
}
