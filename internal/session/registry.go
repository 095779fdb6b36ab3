package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry keeps sessions in memory, keyed by UUID. Update serialises every
// access to a given registry, so sessions handed to fn are never shared
// between goroutines.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	max      int
	order    []string
}

// NewRegistry returns a registry holding at most max sessions; the oldest
// are forgotten first. max <= 0 means unbounded.
func NewRegistry(max int) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		max:      max,
	}
}

// Update runs fn on the session with the given id, creating a fresh one when
// id is empty or unknown, and returns a copy of the session after fn.
func (r *Registry) Update(id string, fn func(*Session) error) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = New(uuid.NewString())
		r.add(s)
	}

	if fn != nil {
		if err := fn(s); err != nil {
			return *s, err
		}
	}
	return *s, nil
}

// Get returns a copy of the session with the given id.
func (r *Registry) Get(id string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// add must be called with mu held.
func (r *Registry) add(s *Session) {
	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)
	for r.max > 0 && len(r.order) > r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.sessions, oldest)
	}
}
