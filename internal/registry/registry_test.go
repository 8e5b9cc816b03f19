package registry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                          { return g.id }
func (g stubGame) Title() string                                       { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig) error                      { return nil }
func (g stubGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                                 {}
func (g stubGame) State() core.GameState                               { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub", Title: "Stub"}, func(config.InvadersConfig) (Game, error) {
		return stubGame{id: "zz-stub"}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}
	g, err := Create("zz-stub", config.DefaultInvadersConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	list := List()
	if list[len(list)-1].ID != "zz-stub" {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", config.DefaultInvadersConfig()); err == nil {
		t.Error("expected error for unknown game")
	}

	boom := errors.New("boom")
	Register(GameInfo{ID: "zz-broken"}, func(config.InvadersConfig) (Game, error) {
		return nil, boom
	})
	_, err := Create("zz-broken", config.DefaultInvadersConfig())
	if !errors.Is(err, boom) {
		t.Errorf("Create() = %v, want wrapped factory error", err)
	}
	if !strings.Contains(err.Error(), "zz-broken") {
		t.Errorf("error %q should name the game", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(config.InvadersConfig) (Game, error) { return stubGame{}, nil }
	Register(GameInfo{ID: "zz-dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, f)
}
