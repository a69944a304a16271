package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/Zachkp/cyber-portfolio/internal/event"
)

func TestLinks(t *testing.T) {
	want := []Link{
		{"Home", "home"},
		{"About", "about"},
		{"Skills", "skills"},
		{"Projects", "projects"},
		{"Experience", "experience"},
		{"Contact", "contact"},
	}
	if diff := cmp.Diff(want, Links()); diff != "" {
		t.Errorf("Links mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleScrollThreshold(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{49, false},
		{49.9, false},
		{50, true},
		{51, true},
		{2000, true},
	}
	var b Bar
	for _, tt := range tests {
		b.HandleScroll(tt.offset)
		if b.Scrolled() != tt.want {
			t.Errorf("HandleScroll(%v): Scrolled = %v, want %v", tt.offset, b.Scrolled(), tt.want)
		}
	}
}

func TestToggleMenuTwice(t *testing.T) {
	var b Bar
	b.ToggleMenu()
	if !b.MenuOpen() {
		t.Fatal("menu closed after one toggle")
	}
	b.ToggleMenu()
	if b.MenuOpen() {
		t.Error("menu open after two toggles")
	}
}

func TestNavigate(t *testing.T) {
	var b Bar
	b.ToggleMenu()

	req, err := b.Navigate("projects", false)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if !b.MenuOpen() {
		t.Error("menu closed on a large viewport")
	}
	want := ScrollRequest{Anchor: "projects", Smooth: true, Duration: ScrollDuration}
	if req != want {
		t.Errorf("req = %+v, want %+v", req, want)
	}

	if _, err = b.Navigate("contact", true); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if b.MenuOpen() {
		t.Error("menu still open after navigating on a small viewport")
	}
}

func TestNavigateUnknown(t *testing.T) {
	var b Bar
	b.ToggleMenu()

	_, err := b.Navigate("blog", true)
	if errors.Cause(err) != ErrUnknownSection {
		t.Errorf("err = %v, want ErrUnknownSection", err)
	}
	if !b.MenuOpen() {
		t.Error("menu closed by a failed navigation")
	}
}

func TestActivateDeactivate(t *testing.T) {
	target := event.NewTarget()
	var b Bar

	b.Activate(target)
	target.Dispatch(event.Event{Kind: event.Scroll, ScrollY: 120})
	if !b.Scrolled() {
		t.Error("Scrolled = false after scroll event")
	}

	b.Deactivate()
	if n := target.Count(event.Scroll); n != 0 {
		t.Errorf("scroll listeners = %d after Deactivate, want 0", n)
	}
	target.Dispatch(event.Event{Kind: event.Scroll, ScrollY: 0})
	if !b.Scrolled() {
		t.Error("deactivated bar still reacted to scroll")
	}
}
