package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/sim"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Decode("invaders.yaml", GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded defaults differ from DefaultInvadersConfig:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestParamsMatchSimDefaults(t *testing.T) {
	got := DefaultInvadersConfig().Params()
	if !reflect.DeepEqual(got, sim.DefaultParams()) {
		t.Errorf("Params() = %+v\nwant %+v", got, sim.DefaultParams())
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "custom.yaml",
			content: `
population:
  cap: 3
timing:
  spawn_interval_ms: 1000
`,
		},
		{
			name: "toml",
			file: "custom.toml",
			content: `
[population]
cap = 3

[timing]
spawn_interval_ms = 1000
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadInvaders(path)
			if err != nil {
				t.Fatalf("LoadInvaders failed: %v", err)
			}
			if cfg.Population.Cap != 3 {
				t.Errorf("cap = %d, want 3", cfg.Population.Cap)
			}
			p := cfg.Params()
			if p.SpawnInterval != time.Second {
				t.Errorf("spawn interval = %v, want 1s", p.SpawnInterval)
			}
			// Untouched keys keep their defaults.
			if cfg.Enemy.Speed != 200 || cfg.Timing.TickRate != 60 {
				t.Errorf("defaults lost: enemy speed %v, tick rate %d", cfg.Enemy.Speed, cfg.Timing.TickRate)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"zero cap", "population:\n  cap: 0\n"},
		{"negative tick rate", "timing:\n  tick_rate: -1\n"},
		{"zero frames", "explosion:\n  frames: 0\n"},
		{"zero frame period", "explosion:\n  frame_period_ms: 0\n"},
		{"zero hold", "input:\n  hold_ticks: 0\n"},
		{"zero width", "play_area:\n  width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadInvaders(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadInvaders() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, err := LoadInvaders(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v should wrap os.ErrNotExist", err)
	}
}

func TestLoadMalformedCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[population\ncap = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Error("expected embedded defaults")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "invaders.yaml"), []byte("population:\n  cap: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if cfg.Population.Cap != 9 {
		t.Errorf("cap = %d, want 9 from ./configs", cfg.Population.Cap)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
