package nav

// History is the in-app analog of the browser history for filter selections:
// selecting a filter pushes an entry (no reload), Back/Forward replay earlier
// selections. The current location is always defined.
type History struct {
	entries []Location
	idx     int
}

// NewHistory starts a history at the given initial location (the "URL" the
// session was opened with).
func NewHistory(initial Location) *History {
	return &History{entries: []Location{initial}}
}

// Current returns the active location.
func (h *History) Current() Location {
	return h.entries[h.idx]
}

// Push makes loc current and records a history entry. Pushing the location
// that is already current is a no-op: reselecting the active filter must not
// grow the back stack. Any forward entries are discarded, matching pushState.
func (h *History) Push(loc Location) {
	if loc == h.Current() {
		return
	}
	h.entries = append(h.entries[:h.idx+1], loc)
	h.idx = len(h.entries) - 1
}

// Back moves to the previous location. It reports false (and stays put) when
// there is nothing to go back to.
func (h *History) Back() (Location, bool) {
	if h.idx == 0 {
		return h.Current(), false
	}
	h.idx--
	return h.Current(), true
}

// Forward moves to the next location after a Back. It reports false when the
// forward stack is empty.
func (h *History) Forward() (Location, bool) {
	if h.idx >= len(h.entries)-1 {
		return h.Current(), false
	}
	h.idx++
	return h.Current(), true
}
