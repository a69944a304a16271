// Package cursor is the decorative pointer overlay: two concentric rings that
// follow the pointer and shrink while a button is held.
package cursor

import "github.com/Zachkp/cyber-portfolio/internal/event"

const (
	OuterRadius  = 16
	InnerRadius  = 4
	PressedScale = 0.75
)

type Point struct {
	X, Y float64
}

// Ring is one circle of the marker.
type Ring struct {
	Center Point
	Radius float64
}

type Cursor struct {
	pos     Point
	pressed bool
	scope   event.Scope
}

func (c *Cursor) Position() Point { return c.pos }
func (c *Cursor) Pressed() bool   { return c.pressed }

func (c *Cursor) Scale() float64 {
	if c.pressed {
		return PressedScale
	}
	return 1
}

// Marker returns the outer and inner ring at the last known position.
func (c *Cursor) Marker() [2]Ring {
	s := c.Scale()
	return [2]Ring{
		{Center: c.pos, Radius: OuterRadius * s},
		{Center: c.pos, Radius: InnerRadius * s},
	}
}

// Activate registers move, down and up handlers on t. Deactivate removes all
// three.
func (c *Cursor) Activate(t *event.Target) {
	c.scope.Listen(t, event.PointerMove, func(e event.Event) {
		c.pos = Point{X: e.X, Y: e.Y}
	})
	c.scope.Listen(t, event.PointerDown, func(event.Event) {
		c.pressed = true
	})
	c.scope.Listen(t, event.PointerUp, func(event.Event) {
		c.pressed = false
	})
}

func (c *Cursor) Deactivate() {
	c.scope.Close()
}
