package event

import "testing"

func TestDispatchOrder(t *testing.T) {
	target := NewTarget()

	var got []int
	target.Add(Scroll, func(Event) { got = append(got, 1) })
	target.Add(Scroll, func(Event) { got = append(got, 2) })
	target.Add(PointerMove, func(Event) { got = append(got, 99) })

	target.Dispatch(Event{Kind: Scroll})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("dispatch order = %v, want [1 2]", got)
	}
}

func TestZeroTarget(t *testing.T) {
	var target Target

	calls := 0
	l := target.Add(Scroll, func(Event) { calls++ })
	target.Dispatch(Event{Kind: Scroll})
	target.Remove(l)
	target.Dispatch(Event{Kind: Scroll})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRemove(t *testing.T) {
	target := NewTarget()

	calls := 0
	l := target.Add(PointerDown, func(Event) { calls++ })
	keep := target.Add(PointerDown, func(Event) {})

	target.Remove(l)
	target.Remove(l)
	target.Dispatch(Event{Kind: PointerDown})

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if n := target.Count(PointerDown); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
	target.Remove(keep)
	if n := target.Count(PointerDown); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestRemoveDuringDispatch(t *testing.T) {
	target := NewTarget()

	var l Listener
	calls := 0
	l = target.Add(Scroll, func(Event) {
		calls++
		target.Remove(l)
	})

	target.Dispatch(Event{Kind: Scroll})
	target.Dispatch(Event{Kind: Scroll})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestScopeCloseIsSymmetric(t *testing.T) {
	target := NewTarget()
	other := NewTarget()

	var s Scope
	s.Listen(target, PointerMove, func(Event) {})
	s.Listen(target, PointerDown, func(Event) {})
	s.Listen(target, PointerUp, func(Event) {})
	s.Listen(other, Scroll, func(Event) {})

	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}

	s.Close()
	s.Close()

	for _, k := range []Kind{PointerMove, PointerDown, PointerUp} {
		if n := target.Count(k); n != 0 {
			t.Errorf("Count(%s) = %d after Close, want 0", k, n)
		}
	}
	if n := other.Count(Scroll); n != 0 {
		t.Errorf("Count(scroll) = %d after Close, want 0", n)
	}
}
