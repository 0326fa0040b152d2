package engine

// HistoryLimit is the number of evaluations kept in a History.
const HistoryLimit = 4

// History is an immutable list of completed calculations, newest first.
// The zero value is an empty history.
type History struct {
	entries []string
}

// NewHistory builds a history from entries given newest first. Entries past
// HistoryLimit are dropped.
func NewHistory(entries ...string) History {
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return History{entries: out}
}

// Push returns a new history with entry in front, truncated to HistoryLimit.
// The receiver is not modified.
func (h History) Push(entry string) History {
	n := len(h.entries) + 1
	if n > HistoryLimit {
		n = HistoryLimit
	}
	out := make([]string, n)
	out[0] = entry
	copy(out[1:], h.entries)
	return History{entries: out}
}

// Len returns the number of entries.
func (h History) Len() int {
	return len(h.entries)
}

// At returns the i-th entry, 0 being the most recent.
func (h History) At(i int) string {
	return h.entries[i]
}

// Items returns a copy of the entries, newest first. An empty history
// returns an empty, non-nil slice.
func (h History) Items() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Equal reports whether both histories hold the same entries in order.
func (h History) Equal(o History) bool {
	if len(h.entries) != len(o.entries) {
		return false
	}
	for i := range h.entries {
		if h.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}
