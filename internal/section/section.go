// Package section turns the portfolio store into the fragments each page
// section renders, in source order, with their reveal timing.
package section

import (
	"iter"
	"time"

	"github.com/Zachkp/cyber-portfolio/internal/portfolio"
)

// Stagger is the reveal delay added per item index.
const Stagger = 100 * time.Millisecond

// Side is the timeline column a fragment is placed in.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// SideOf places even indexes left and odd indexes right.
func SideOf(index int) Side {
	if index%2 == 0 {
		return Left
	}
	return Right
}

// Fragment is one rendered item of a section.
type Fragment[T any] struct {
	Index int
	Delay time.Duration
	Side  Side
	Item  T
}

// DelaySeconds is the reveal delay in the unit CSS transitions take.
func (f Fragment[T]) DelaySeconds() float64 {
	return f.Delay.Seconds()
}

// Reveal yields one fragment per item. Iteration can be restarted and always
// starts again at index 0.
func Reveal[T any](items []T) iter.Seq[Fragment[T]] {
	return func(yield func(Fragment[T]) bool) {
		for i, item := range items {
			f := Fragment[T]{
				Index: i,
				Delay: time.Duration(i) * Stagger,
				Side:  SideOf(i),
				Item:  item,
			}
			if !yield(f) {
				return
			}
		}
	}
}

func Skills(s *portfolio.Store) iter.Seq[Fragment[portfolio.SkillGroup]] {
	return Reveal(s.Skills())
}

func Experience(s *portfolio.Store) iter.Seq[Fragment[portfolio.ExperienceEntry]] {
	return Reveal(s.Experience())
}

func Projects(s *portfolio.Store) iter.Seq[Fragment[portfolio.ProjectEntry]] {
	return Reveal(s.Projects())
}
