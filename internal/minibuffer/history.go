package minibuffer

// MaxHistoryEntries caps the history store; the oldest entry is evicted
// on overflow.
const MaxHistoryEntries = 500

// History is a shared command/search history with its own navigation
// cursor. Navigation is independent of adding entries: a caller
// typically calls Add only once navigation produces a final choice.
type History struct {
	entries []string
	navIdx  int // index into entries while navigating; -1 when not navigating
	temp    string
	hasTemp bool
}

// NewHistory returns an empty history store.
func NewHistory() *History {
	return &History{navIdx: -1}
}

// Add appends entry, discarding empty entries and consecutive duplicates
// of the most recent one, evicting the oldest entry past MaxHistoryEntries.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > MaxHistoryEntries {
		h.entries = h.entries[len(h.entries)-MaxHistoryEntries:]
	}
}

// StartNavigation begins a navigation session, saving currentInput as
// the value to restore once navigation runs past the newest entry.
func (h *History) StartNavigation(currentInput string) {
	h.temp = currentInput
	h.hasTemp = true
	h.navIdx = len(h.entries)
}

// Prev returns the next-older entry, repeating the oldest once reached.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.navIdx <= 0 {
		h.navIdx = 0
		return h.entries[0], true
	}
	h.navIdx--
	return h.entries[h.navIdx], true
}

// Next returns the next-newer entry. Once navigation passes the newest
// entry, it returns the saved temp value exactly once, then reports no
// further entries.
func (h *History) Next() (string, bool) {
	if h.navIdx >= len(h.entries)-1 {
		if h.hasTemp {
			h.hasTemp = false
			h.navIdx = len(h.entries)
			return h.temp, true
		}
		return "", false
	}
	h.navIdx++
	return h.entries[h.navIdx], true
}

// ResetNavigation clears the saved temp value and navigation index.
func (h *History) ResetNavigation() {
	h.navIdx = -1
	h.temp = ""
	h.hasTemp = false
}
