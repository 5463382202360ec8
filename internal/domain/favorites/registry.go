package favorites

import (
	"sync"
	"time"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry keeps one Store per logged-in user.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry), now: time.Now}
}

// Get returns the store of a user and marks it as used.
func (r *Registry) Get(userID string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[userID]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

func (r *Registry) GetOrCreate(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[userID]
	if !ok {
		e = &entry{store: NewStore()}
		r.entries[userID] = e
	}
	e.lastSeen = r.now()
	return e.store
}

func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	delete(r.entries, userID)
	r.mu.Unlock()
}

// Idle lists users whose store has not been used for longer than d.
func (r *Registry) Idle(d time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-d)
	var users []string
	for userID, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			users = append(users, userID)
		}
	}
	return users
}

// WithClock replaces the time source used for idle tracking.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
	return r
}
