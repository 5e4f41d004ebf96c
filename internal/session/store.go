package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/nycdash/taxi-dashboard-go/internal/models"
)

// Session is the per-user state the dashboard keeps between requests:
// the last validated filter. The dataset itself is immutable after
// startup and shared read-only; filters are the only per-session data.
type Session struct {
	ID       string
	Filter   *models.TripFilter
	LastSeen time.Time
}

// Store tracks sessions by ID. Stale sessions are swept periodically;
// there is no other invalidation short of a process restart.
type Store struct {
	sessions map[string]*Session
	mu       sync.Mutex
	ttl      time.Duration
}

// NewStore creates a session store. Sessions idle longer than ttl are
// dropped by the background sweep.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}

	go s.sweep()

	return s
}

// sweep removes stale sessions periodically
func (s *Store) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, sess := range s.sessions {
			if now.Sub(sess.LastSeen) > s.ttl {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

// GetOrCreate returns the session for id, creating it if absent, and
// marks it as seen.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id}
		s.sessions[id] = sess
	}
	sess.LastSeen = time.Now()
	return sess
}

// SetFilter stores a session's validated filter.
func (s *Store) SetFilter(id string, f *models.TripFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id}
		s.sessions[id] = sess
	}
	sess.Filter = f
	sess.LastSeen = time.Now()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// NewID generates a random session identifier.
func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
