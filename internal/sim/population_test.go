package sim

import (
	"errors"
	"testing"
)

func expectInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPopulationInvariant) {
			t.Fatalf("panic value = %v, want ErrPopulationInvariant", r)
		}
	}()
	fn()
}

func TestPopulationBounds(t *testing.T) {
	p := NewPopulation(2)
	if !p.CanSpawn() {
		t.Fatal("empty population should accept a spawn")
	}
	p.Spawned()
	p.Spawned()
	if p.CanSpawn() {
		t.Error("full population should refuse a spawn")
	}
	if p.Count() != 2 {
		t.Errorf("Count() = %d, want 2", p.Count())
	}

	expectInvariantPanic(t, p.Spawned)

	p.Killed()
	p.Killed()
	if p.Count() != 0 {
		t.Errorf("Count() = %d, want 0", p.Count())
	}
	expectInvariantPanic(t, p.Killed)
}
