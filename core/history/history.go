// Package history keeps the list of commands entered into the shell and
// persists it between sessions.
package history

// History is an append-only list of rendered commands. It's iterated newest
// first by popping entries off the end.
type History struct {
	entries []string
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// FromEntries creates a history holding a copy of entries, oldest first.
func FromEntries(entries []string) *History {
	return &History{entries: append([]string(nil), entries...)}
}

// Append adds an entry to the end of the history.
func (h *History) Append(entry string) {
	h.entries = append(h.entries, entry)
}

// Pop removes and returns the newest entry. ok is false once the history is
// empty.
func (h *History) Pop() (entry string, ok bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	last := len(h.entries) - 1
	entry = h.entries[last]
	h.entries = h.entries[:last]
	return entry, true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Clear discards all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Trim drops the oldest entries so at most limit remain. A limit <= 0 keeps
// everything.
func (h *History) Trim(limit int) {
	if limit <= 0 || len(h.entries) <= limit {
		return
	}
	h.entries = append([]string(nil), h.entries[len(h.entries)-limit:]...)
}
