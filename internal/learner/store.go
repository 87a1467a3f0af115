package learner

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/serendipity-ink/internal/grading"
)

// Store keeps live sessions in memory. Nothing survives a restart.
type Store interface {
	Create() (View, error)
	View(id string) (View, error)
	// Do runs fn against the session under the store lock and returns the
	// view rendered afterwards, even when fn fails.
	Do(id string, fn func(*Session) error) (View, error)
	Sweep(now time.Time) int
	Len() int
}

type entry struct {
	sess    *Session
	touched time.Time
}

type memoryStore struct {
	mu       sync.Mutex
	grader   grading.Grader
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*entry
}

type StoreOption func(*memoryStore)

// WithTTL evicts sessions idle longer than d. Zero disables expiry.
func WithTTL(d time.Duration) StoreOption { return func(m *memoryStore) { m.ttl = d } }

func WithClock(now func() time.Time) StoreOption { return func(m *memoryStore) { m.now = now } }

func NewInMemoryStore(g grading.Grader, opts ...StoreOption) Store {
	m := &memoryStore{
		grader:   g,
		now:      time.Now,
		sessions: map[string]*entry{},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *memoryStore) Create() (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	s := NewSession(m.grader)
	m.sessions[id] = &entry{sess: s, touched: m.now()}
	v := s.Render()
	v.SessionID = id
	return v, nil
}

func (m *memoryStore) View(id string) (View, error) {
	return m.Do(id, func(*Session) error { return nil })
}

func (m *memoryStore) Do(id string, fn func(*Session) error) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id)
	if err != nil {
		return View{}, err
	}
	e.touched = m.now()
	err = fn(e.sess)
	v := e.sess.Render()
	v.SessionID = id
	return v, err
}

// lookup drops an expired entry on access so a stale id never resolves,
// even between sweeps. Caller holds mu.
func (m *memoryStore) lookup(id string) (*entry, error) {
	e, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	if m.expired(e, m.now()) {
		delete(m.sessions, id)
		return nil, fmt.Errorf("session %q expired: %w", id, ErrSessionNotFound)
	}
	return e, nil
}

func (m *memoryStore) expired(e *entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.touched) > m.ttl
}

func (m *memoryStore) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
