package motion

import (
	"math"
	"testing"
	"time"
)

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		name     string
		scrollY  float64
		height   float64
		viewport float64
		want     float64
	}{
		{"top", 0, 3000, 1000, 0},
		{"middle", 1000, 3000, 1000, 0.5},
		{"bottom", 2000, 3000, 1000, 1},
		{"overscroll", 2500, 3000, 1000, 1},
		{"negative", -40, 3000, 1000, 0},
		{"short page", 0, 800, 1000, 0},
		{"exact fit", 0, 1000, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollProgress(tt.scrollY, tt.height, tt.viewport); got != tt.want {
				t.Errorf("ScrollProgress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultSpringIsOverdamped(t *testing.T) {
	if DefaultSpring.Damping < DefaultSpring.CriticalDamping() {
		t.Errorf("damping %v below critical %v", DefaultSpring.Damping, DefaultSpring.CriticalDamping())
	}
}

func TestSpringSettlesWithoutOvershoot(t *testing.T) {
	s := NewSpring(DefaultSpring, 0)
	s.SetTarget(1)

	prev := 0.0
	for i := 0; i < 300; i++ {
		v := s.Step(16 * time.Millisecond)
		if v > 1 {
			t.Fatalf("overshoot at frame %d: %v", i, v)
		}
		if v < prev {
			t.Fatalf("moved away from target at frame %d: %v < %v", i, v, prev)
		}
		prev = v
	}

	if !s.AtRest() || s.Value() != 1 {
		t.Errorf("Value = %v AtRest = %v after 4.8s, want 1 true", s.Value(), s.AtRest())
	}
}

func TestSpringLargeStepIsStable(t *testing.T) {
	s := NewSpring(SpringConfig{Stiffness: 400, Damping: 5, Mass: 1, RestDelta: 0.001, RestSpeed: 0.01}, 0)
	s.SetTarget(1)

	v := s.Step(10 * time.Second)
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v-1) > 0.01 {
		t.Errorf("Value after large step = %v, want ~1", v)
	}
}

func TestSpringAtRestStaysPut(t *testing.T) {
	s := NewSpring(DefaultSpring, 0.25)
	if !s.AtRest() {
		t.Fatal("new spring not at rest")
	}
	if v := s.Step(time.Second); v != 0.25 {
		t.Errorf("Value = %v, want 0.25", v)
	}
}

func TestProgressBar(t *testing.T) {
	bar := NewProgressBar(DefaultSpring)
	bar.Scroll(1000, 3000, 1000)

	first := bar.Tick(16 * time.Millisecond)
	if first <= 0 || first >= 0.5 {
		t.Errorf("first tick = %v, want lagging in (0, 0.5)", first)
	}
	for i := 0; i < 300; i++ {
		bar.Tick(16 * time.Millisecond)
	}
	if bar.Scale() != 0.5 {
		t.Errorf("Scale = %v, want 0.5", bar.Scale())
	}
}
