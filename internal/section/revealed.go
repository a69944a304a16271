package section

// Revealed records which fragments have entered the viewport. A fragment is
// revealed once and stays revealed.
type Revealed struct {
	seen map[int]bool
}

// Enter reports whether index is entering for the first time.
func (r *Revealed) Enter(index int) bool {
	if r.seen == nil {
		r.seen = make(map[int]bool)
	}
	if r.seen[index] {
		return false
	}
	r.seen[index] = true
	return true
}

func (r *Revealed) Visible(index int) bool {
	return r.seen[index]
}

func (r *Revealed) Len() int {
	return len(r.seen)
}
