package store

import "portfolio-chatbot/internal/chatbot"

// GetOrCreate returns a copy of the session's history, creating the
// session seeded with the system preamble if it does not exist yet.
func (s *Store) GetOrCreate(sessionID string) []chatbot.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyHistory(s.getOrCreate(sessionID).history)
}

// Append adds a message to the session's history and applies the
// truncation policy: at most the system preamble plus the
// chatbot.MaxSessionHistory most recent messages survive.
func (s *Store) Append(sessionID string, msg chatbot.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreate(sessionID)
	sess.history = append(sess.history, msg)

	if len(sess.history) > chatbot.MaxSessionHistory+1 {
		kept := make([]chatbot.Message, 0, chatbot.MaxSessionHistory+1)
		kept = append(kept, sess.history[0])
		kept = append(kept, sess.history[len(sess.history)-chatbot.MaxSessionHistory:]...)
		sess.history = kept
	}
}

// History returns a copy of the session's history and whether it exists.
func (s *Store) History(sessionID string) ([]chatbot.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, false
	}
	return copyHistory(sess.history), true
}

// Clear removes the session entirely; reports whether it existed.
func (s *Store) Clear(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Remove(sessionID)
}

// Size returns the number of active sessions.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}

// Acquire locks the session for an exclusive chat turn, creating it if
// needed, and returns the release function. Other sessions are not
// blocked while the lock is held.
func (s *Store) Acquire(sessionID string) (release func()) {
	s.mu.Lock()
	sess := s.getOrCreate(sessionID)
	s.mu.Unlock()

	sess.turn.Lock()
	return sess.turn.Unlock
}

// getOrCreate must be called with s.mu held.
func (s *Store) getOrCreate(sessionID string) *session {
	if sess, ok := s.sessions.Get(sessionID); ok {
		return sess
	}
	sess := &session{
		history: []chatbot.Message{{Role: chatbot.RoleSystem, Content: s.preamble}},
	}
	s.sessions.Add(sessionID, sess)
	return sess
}

func copyHistory(history []chatbot.Message) []chatbot.Message {
	out := make([]chatbot.Message, len(history))
	copy(out, history)
	return out
}
