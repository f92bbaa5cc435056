package game

// SoundEvent names a discrete audio cue emitted by the simulation.
// The platform drains the queue once per tick; the audio adapter may
// no-op when muted.
type SoundEvent string

const (
	SoundFire         SoundEvent = "fire"
	SoundEnemyDown    SoundEvent = "enemy_down"
	SoundPlayerHit    SoundEvent = "player_hit"
	SoundPickup       SoundEvent = "pickup"
	SoundGateOpen     SoundEvent = "gate_open"
	SoundLevelAdvance SoundEvent = "level_advance"
)

// emit queues a sound event for this tick.
func (s *Session) emit(ev SoundEvent) {
	s.sounds = append(s.sounds, ev)
}

// DrainSounds returns the sound events queued since the last drain and
// clears the queue.
func (s *Session) DrainSounds() []SoundEvent {
	if len(s.sounds) == 0 {
		return nil
	}
	out := make([]SoundEvent, len(s.sounds))
	copy(out, s.sounds)
	s.sounds = s.sounds[:0]
	return out
}
