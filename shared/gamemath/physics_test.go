package gamemath

import "testing"

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{5, 1, 4},
		{-5, 1, -4},
		{0.5, 1, 0},
		{-0.5, 1, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(10, 4); got != 4 {
		t.Errorf("ClampSpeed(10, 4) = %v", got)
	}
	if got := ClampSpeed(-10, 4); got != -4 {
		t.Errorf("ClampSpeed(-10, 4) = %v", got)
	}
	if got := ClampSpeed(2, 4); got != 2 {
		t.Errorf("ClampSpeed(2, 4) = %v", got)
	}
}

func TestAxisInput(t *testing.T) {
	tests := []struct {
		neg, pos bool
		want     float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := AxisInput(tt.neg, tt.pos); got != tt.want {
			t.Errorf("AxisInput(%v, %v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
		}
	}
}
