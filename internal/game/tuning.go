package game

import (
	"fmt"

	"github.com/mkovrin/crystal-drift/internal/config"
)

// Tuning holds the live-tunable steering and firing parameters.
// Fields are mutated only through Set, which revalidates the range, so a
// debug panel can never poke an out-of-range value into the simulation.
type Tuning struct {
	SpringKP     float64
	SpringKD     float64
	DeadZone     float64
	MaxSpeed     float64
	BulletSpeed  float64
	FireCooldown float64
}

// TuningRange describes the valid interval and adjustment step for a
// tunable parameter.
type TuningRange struct {
	Min, Max, Step float64
}

// TuningNames lists the recognized parameter names in display order.
var TuningNames = []string{
	"spring_kp",
	"spring_kd",
	"dead_zone",
	"max_speed",
	"bullet_speed",
	"fire_cooldown",
}

// TuningRanges maps parameter names to their valid ranges.
var TuningRanges = map[string]TuningRange{
	"spring_kp":     {Min: 1, Max: 100, Step: 1},
	"spring_kd":     {Min: 0, Max: 40, Step: 0.5},
	"dead_zone":     {Min: 0, Max: 5, Step: 0.1},
	"max_speed":     {Min: 5, Max: 120, Step: 1},
	"bullet_speed":  {Min: 10, Max: 150, Step: 2.5},
	"fire_cooldown": {Min: 0.05, Max: 1.0, Step: 0.01},
}

// TuningFromConfig seeds tunables from the loaded game configuration.
func TuningFromConfig(p config.DriftPhysics) Tuning {
	return Tuning{
		SpringKP:     p.SpringKP,
		SpringKD:     p.SpringKD,
		DeadZone:     p.DeadZone,
		MaxSpeed:     p.MaxSpeed,
		BulletSpeed:  p.BulletSpeed,
		FireCooldown: p.FireCooldown,
	}
}

// Get returns the value of a named parameter.
func (t Tuning) Get(name string) (float64, bool) {
	switch name {
	case "spring_kp":
		return t.SpringKP, true
	case "spring_kd":
		return t.SpringKD, true
	case "dead_zone":
		return t.DeadZone, true
	case "max_speed":
		return t.MaxSpeed, true
	case "bullet_speed":
		return t.BulletSpeed, true
	case "fire_cooldown":
		return t.FireCooldown, true
	default:
		return 0, false
	}
}

// Set assigns a named parameter after validating its range.
// Unknown names and out-of-range values are rejected with an error.
func (t *Tuning) Set(name string, value float64) error {
	r, ok := TuningRanges[name]
	if !ok {
		return fmt.Errorf("tuning: unknown parameter %q", name)
	}
	if value < r.Min || value > r.Max {
		return fmt.Errorf("tuning: %s=%v outside [%v, %v]", name, value, r.Min, r.Max)
	}

	switch name {
	case "spring_kp":
		t.SpringKP = value
	case "spring_kd":
		t.SpringKD = value
	case "dead_zone":
		t.DeadZone = value
	case "max_speed":
		t.MaxSpeed = value
	case "bullet_speed":
		t.BulletSpeed = value
	case "fire_cooldown":
		t.FireCooldown = value
	}
	return nil
}

// ApplyMap applies saved parameters. Unknown keys and out-of-range values
// are ignored per key; valid keys still apply.
func (t *Tuning) ApplyMap(values map[string]float64) {
	for name, value := range values {
		_ = t.Set(name, value)
	}
}

// Map returns the tunables as a name-to-value mapping for persistence.
func (t Tuning) Map() map[string]float64 {
	out := make(map[string]float64, len(TuningNames))
	for _, name := range TuningNames {
		v, _ := t.Get(name)
		out[name] = v
	}
	return out
}
