package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg DriftConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultDriftConfig() {
		t.Errorf("embedded defaults diverge from hardcoded defaults:\n%+v\nvs\n%+v",
			cfg, DefaultDriftConfig())
	}
}

func TestLoadDriftCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.yaml")
	data := []byte(`
physics:
  spring_kp: 42
  max_speed: 20
gameplay:
  lives: 5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrift(path)
	if err != nil {
		t.Fatalf("LoadDrift failed: %v", err)
	}
	if cfg.Physics.SpringKP != 42 {
		t.Errorf("spring_kp = %v, expected 42", cfg.Physics.SpringKP)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("lives = %d, expected 5", cfg.Gameplay.Lives)
	}
}

func TestLoadDriftMissingCustomPath(t *testing.T) {
	if _, err := LoadDrift("/nonexistent/drift.yaml"); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestLoadDriftMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDrift(path); err == nil {
		t.Error("malformed explicit config should be an error")
	}
}
