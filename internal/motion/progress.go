package motion

import "time"

// ScrollProgress is how far the page has been scrolled, from 0 at the top to
// 1 at the bottom. Pages shorter than the viewport report 0.
func ScrollProgress(scrollY, scrollHeight, viewportHeight float64) float64 {
	scrollable := scrollHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return min(max(scrollY/scrollable, 0), 1)
}

// ProgressBar is the spring-smoothed scroll indicator at the top of the page.
type ProgressBar struct {
	spring *Spring
}

func NewProgressBar(cfg SpringConfig) *ProgressBar {
	return &ProgressBar{spring: NewSpring(cfg, 0)}
}

// Scroll updates the target from the current scroll position.
func (p *ProgressBar) Scroll(scrollY, scrollHeight, viewportHeight float64) {
	p.spring.SetTarget(ScrollProgress(scrollY, scrollHeight, viewportHeight))
}

// Tick advances the animation and returns the bar's horizontal scale.
func (p *ProgressBar) Tick(dt time.Duration) float64 {
	return p.spring.Step(dt)
}

func (p *ProgressBar) Scale() float64 {
	return p.spring.Value()
}
