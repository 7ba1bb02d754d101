package core

import "testing"

func TestCentered(t *testing.T) {
	r := Centered(80, 24, 16, 3)
	if r != NewRect(32, 10, 16, 3) {
		t.Errorf("Centered = %+v", r)
	}
	if r.Right() != 48 || r.Bottom() != 13 {
		t.Errorf("edges = %d,%d, want 48,13", r.Right(), r.Bottom())
	}
}

func TestInset(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		dx, dy int
		want   Rect
	}{
		{"panel body", NewRect(20, 2, 40, 10), 2, 1, NewRect(22, 3, 36, 8)},
		{"no inset", NewRect(0, 0, 5, 5), 0, 0, NewRect(0, 0, 5, 5)},
		{"collapses to zero", NewRect(0, 0, 3, 1), 2, 1, NewRect(2, 1, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.dx, tc.dy); got != tc.want {
				t.Errorf("Inset(%d, %d) = %+v, want %+v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}

	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5, 0, 1) = %f, want 1", got)
	}
	if got := Clamp(-0.5, 0.0, 1.0); got != 0 {
		t.Errorf("Clamp(-0.5, 0, 1) = %f, want 0", got)
	}
}

func TestFrameInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).FrameInterval(); got != 20 {
		t.Errorf("FrameInterval() = %d, want 20", got)
	}
	if got := (RuntimeConfig{}).FrameInterval(); got != 33 {
		t.Errorf("FrameInterval() with zero tick rate = %d, want 33", got)
	}
}
