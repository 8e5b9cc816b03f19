package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestHostKeyPathCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := hostKeyPath(want)
	if err != nil {
		t.Fatalf("hostKeyPath: %v", err)
	}
	if got != want {
		t.Errorf("hostKeyPath = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := hostKeyPath("")
	if err != nil {
		t.Fatalf("hostKeyPath: %v", err)
	}
	if want := filepath.Join(home, ".invaders", "host_key"); got != want {
		t.Errorf("hostKeyPath = %q, want %q", got, want)
	}
}

func TestNewSSHServerRejectsInvalidGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.DBPath = ""
	cfg.Game.Population.Cap = 0

	if _, err := NewSSHServer(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewSSHServer error = %v, want ErrInvalidConfig", err)
	}
}
