package router

// History is an in-memory navigation stack. It has a single pop-state
// subscriber, notified when Back moves to an earlier entry.
type History struct {
	entries  []string
	index    int
	popState func(location string)
}

// NewHistory starts a history at location.
func NewHistory(location string) *History {
	return &History{entries: []string{location}}
}

// OnPopState replaces the pop-state subscriber.
func (h *History) OnPopState(fn func(location string)) {
	h.popState = fn
}

// Current returns the active location.
func (h *History) Current() string {
	return h.entries[h.index]
}

// Push adds location after the current entry, dropping any forward entries.
func (h *History) Push(location string) {
	h.entries = append(h.entries[:h.index+1], location)
	h.index++
}

// Replace swaps the current entry for location.
func (h *History) Replace(location string) {
	h.entries[h.index] = location
}

// Back moves one entry back and notifies the subscriber. It reports false at
// the start of history.
func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	if h.popState != nil {
		h.popState(h.Current())
	}
	return true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
