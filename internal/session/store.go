package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"morning-assistant/internal/model"
)

// Config controls how many sessions the store keeps and for how long
type Config struct {
	Capacity int
	TTL      time.Duration
}

// Store keeps sessions in an expiring LRU cache. Idle sessions fall out
// after the TTL, active ones are refreshed on every lookup.
type Store struct {
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a session store with the given capacity and TTL,
// falling back to defaults for zero values
func NewStore(cfg Config) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](cfg.Capacity, nil, cfg.TTL),
	}
}

// GetOrCreate returns the session for id, creating a fresh one when the id
// is empty or unknown. The returned bool reports whether the session
// already existed. Lookups re-add the entry so activity extends the
// session lifetime.
func (s *Store) GetOrCreate(id string, scope model.Scope) (*Session, bool) {
	if id != "" {
		if sess, ok := s.sessions.Get(id); ok {
			s.sessions.Add(id, sess)
			return sess, true
		}
	}

	if id == "" {
		id = uuid.New().String()
	}
	sess := newSession(id, scope)
	s.sessions.Add(id, sess)
	return sess, false
}

// Get returns the session for id without creating one
func (s *Store) Get(id string) (*Session, bool) {
	return s.sessions.Get(id)
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	return s.sessions.Len()
}
