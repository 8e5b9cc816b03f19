package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(5, 5), V2(10, 10)),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(20, 0), V2(10, 10)),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(0, -20), V2(10, 10)),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(10, 0), V2(10, 10)),
			expected: false,
		},
		{
			name:     "touching corners (no overlap)",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(10, 10), V2(10, 10)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(V2(0, 0), V2(40, 40)),
			b:        BoxAt(V2(3, -4), V2(5, 5)),
			expected: true,
		},
		{
			name:     "overlap on one axis only",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(4, 30), V2(10, 10)),
			expected: false,
		},
		{
			name:     "tiny overlap",
			a:        BoxAt(V2(0, 0), V2(10, 10)),
			b:        BoxAt(V2(9.999, 0), V2(10, 10)),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := BoxAt(V2(10, -5), V2(4, 6))

	if got := b.Min(); got != V2(8, -8) {
		t.Errorf("Min() = %v, expected (8, -8)", got)
	}
	if got := b.Max(); got != V2(12, -2) {
		t.Errorf("Max() = %v, expected (12, -2)", got)
	}
}

func TestVec2Ops(t *testing.T) {
	v := V2(1, -2)

	if got := v.Add(V2(3, 4)); got != V2(4, 2) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Scale(2); got != V2(2, -4) {
		t.Errorf("Scale() = %v", got)
	}
	if got := V2(0.4, 0.5).Mul(V2(32, 32)); got != V2(12.8, 16) {
		t.Errorf("Mul() = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF below min = %f", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF above max = %f", got)
	}
	if got := ClampF(5.5, 0, 10); got != 5.5 {
		t.Errorf("ClampF within range = %f", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
