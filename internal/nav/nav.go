// Package nav is the fixed navigation bar: its links, its scrolled style and
// its mobile menu.
package nav

import (
	"slices"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/cyber-portfolio/internal/event"
)

// ScrollThreshold is the offset in pixels at which the bar switches to its
// solid background.
const ScrollThreshold = 50

// ScrollDuration is how long a smooth scroll to a section takes.
const ScrollDuration = 500 * time.Millisecond

// Sections are the page anchors in nav order.
var Sections = []string{"home", "about", "skills", "projects", "experience", "contact"}

var ErrUnknownSection = errors.New("unknown section")

type Link struct {
	Label  string
	Anchor string
}

// Links returns the nav entries with labels derived from the anchors.
func Links() []Link {
	title := cases.Title(language.English)
	links := make([]Link, 0, len(Sections))
	for _, s := range Sections {
		links = append(links, Link{Label: title.String(s), Anchor: s})
	}
	return links
}

// ScrollRequest asks the viewport to scroll to an anchor.
type ScrollRequest struct {
	Anchor   string
	Smooth   bool
	Duration time.Duration
}

// Bar holds the two independent flags of the navigation bar.
type Bar struct {
	scrolled bool
	menuOpen bool
	scope    event.Scope
}

func (b *Bar) Scrolled() bool { return b.scrolled }
func (b *Bar) MenuOpen() bool { return b.menuOpen }

// HandleScroll recomputes the scrolled flag from a vertical offset.
func (b *Bar) HandleScroll(offset float64) {
	b.scrolled = offset >= ScrollThreshold
}

func (b *Bar) ToggleMenu() {
	b.menuOpen = !b.menuOpen
}

// Navigate resolves a click on the entry for anchor. On small viewports the
// menu closes as well.
func (b *Bar) Navigate(anchor string, small bool) (req ScrollRequest, err error) {
	if !slices.Contains(Sections, anchor) {
		err = errors.Wrapf(ErrUnknownSection, "navigate to %q", anchor)
		return req, err
	}

	if small {
		b.menuOpen = false
	}
	req = ScrollRequest{Anchor: anchor, Smooth: true, Duration: ScrollDuration}
	return req, err
}

// Activate subscribes the bar to scroll events on t until Deactivate.
func (b *Bar) Activate(t *event.Target) {
	b.scope.Listen(t, event.Scroll, func(e event.Event) {
		b.HandleScroll(e.ScrollY)
	})
}

func (b *Bar) Deactivate() {
	b.scope.Close()
}
