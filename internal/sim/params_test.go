package sim

import (
	"errors"
	"testing"
	"time"
)

func TestTicksFor(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		period time.Duration
		want   int
	}{
		{2500 * time.Millisecond, 150},
		{500 * time.Millisecond, 30},
		{50 * time.Millisecond, 3},
		{time.Millisecond, 1},
		{0, 1},
	}

	for _, tt := range tests {
		if got := p.TicksFor(tt.period); got != tt.want {
			t.Errorf("TicksFor(%v) = %d, want %d", tt.period, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"zero tick rate", func(p *Params) { p.TickRate = 0 }},
		{"no catch-up", func(p *Params) { p.MaxCatchUpTicks = 0 }},
		{"zero spawn interval", func(p *Params) { p.SpawnInterval = 0 }},
		{"zero cap", func(p *Params) { p.PopulationCap = 0 }},
		{"no frames", func(p *Params) { p.ExplosionFrames = 0 }},
		{"zero unit", func(p *Params) { p.CollisionUnit = 0 }},
		{"enemy too wide", func(p *Params) { p.EnemySize.X = p.Width }},
		{"player margin too wide", func(p *Params) { p.PlayerMargin = p.Width / 2 }},
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
			if _, err := New(p, still()); err == nil {
				t.Error("New accepted invalid params")
			}
		})
	}
}

func TestTimerCarriesRemainder(t *testing.T) {
	tm := NewTimer(3)
	var fired []int
	for i := 1; i <= 10; i++ {
		if tm.Tick() {
			fired = append(fired, i)
		}
	}
	want := []int{3, 6, 9}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired at %v, want %v", fired, want)
		}
	}
	if tm.Elapsed() != 1 {
		t.Errorf("Elapsed() = %d, want 1", tm.Elapsed())
	}

	if NewTimer(0).Period != 1 {
		t.Error("NewTimer(0) should clamp the period to 1")
	}
}
