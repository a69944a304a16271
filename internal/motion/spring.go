// Package motion has the math behind the scroll progress bar.
package motion

import (
	"math"
	"time"
)

// SpringConfig parameterises a damped spring.
type SpringConfig struct {
	Stiffness float64 `mapstructure:"stiffness" json:"stiffness"`
	Damping   float64 `mapstructure:"damping" json:"damping"`
	Mass      float64 `mapstructure:"mass" json:"mass"`
	RestDelta float64 `mapstructure:"restDelta" json:"restDelta"`
	RestSpeed float64 `mapstructure:"restSpeed" json:"restSpeed"`
}

// DefaultSpring matches the progress bar: stiff enough to keep up with a
// fling, damped enough never to overshoot.
var DefaultSpring = SpringConfig{
	Stiffness: 100,
	Damping:   30,
	Mass:      1,
	RestDelta: 0.001,
	RestSpeed: 0.01,
}

// CriticalDamping is the damping at which the spring stops oscillating.
func (c SpringConfig) CriticalDamping() float64 {
	return 2 * math.Sqrt(c.Stiffness*c.mass())
}

func (c SpringConfig) mass() float64 {
	if c.Mass <= 0 {
		return 1
	}
	return c.Mass
}

const substep = time.Millisecond

// Spring follows a target value with damped lag.
type Spring struct {
	cfg      SpringConfig
	value    float64
	velocity float64
	target   float64
}

func NewSpring(cfg SpringConfig, initial float64) *Spring {
	return &Spring{cfg: cfg, value: initial, target: initial}
}

func (s *Spring) SetTarget(v float64) { s.target = v }
func (s *Spring) Target() float64     { return s.target }
func (s *Spring) Value() float64      { return s.value }

// AtRest reports whether the spring has settled on its target.
func (s *Spring) AtRest() bool {
	return math.Abs(s.target-s.value) <= s.cfg.RestDelta && math.Abs(s.velocity) <= s.cfg.RestSpeed
}

// Step advances the spring by dt and returns the new value. Large steps are
// split into 1ms substeps to keep the integration stable.
func (s *Spring) Step(dt time.Duration) float64 {
	if s.AtRest() {
		s.value, s.velocity = s.target, 0
		return s.value
	}

	m := s.cfg.mass()
	for dt > 0 {
		h := min(dt, substep)
		dt -= h

		sec := h.Seconds()
		force := -s.cfg.Stiffness*(s.value-s.target) - s.cfg.Damping*s.velocity
		s.velocity += force / m * sec
		s.value += s.velocity * sec
	}

	if s.AtRest() {
		s.value, s.velocity = s.target, 0
	}
	return s.value
}
