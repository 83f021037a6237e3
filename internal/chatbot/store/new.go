package store

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"portfolio-chatbot/internal/chatbot"
)

// DefaultCapacity bounds how many concurrent sessions the process holds.
// Least-recently-used sessions are evicted beyond it.
const DefaultCapacity = 1000

// Store owns all in-memory session histories. It is injected into the
// use case at construction; there is no package-level instance. Contents
// are volatile and lost on restart.
type Store struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *session]
	preamble string
}

// session is one visitor's conversation state.
type session struct {
	// turn serializes whole chat turns (append user → model call → append
	// reply) so concurrent requests on one session cannot interleave.
	turn    sync.Mutex
	history []chatbot.Message
}

// New creates a session store seeding every new session with the given
// system preamble. capacity <= 0 falls back to DefaultCapacity.
func New(preamble string, capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	sessions, err := lru.New[string, *session](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{
		sessions: sessions,
		preamble: preamble,
	}, nil
}
