package history

import "sync"

// Session is the history of a running shell. It's shared between the read
// loop, which appends to it, and the interrupt handler, which saves it, so all
// access is serialized.
type Session struct {
	mu      sync.Mutex
	store   Store
	history *History
	// saved is the number of entries already written to the store.
	saved int
}

// NewSession creates an empty session history backed by store.
func NewSession(store Store) *Session {
	return &Session{store: store, history: New()}
}

// Append records a command entered in this session.
func (s *Session) Append(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Append(entry)
}

// Entries returns the entries of this session, oldest first.
func (s *Session) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Save writes the entries that haven't been saved yet to the store. Saving
// more than once is safe.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.history.Entries()[s.saved:]
	if err := s.store.Append(pending...); err != nil {
		return err
	}
	s.saved += len(pending)
	return nil
}

// Path returns where the session is saved.
func (s *Session) Path() string {
	return s.store.Path()
}
