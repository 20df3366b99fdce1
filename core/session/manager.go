package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out views keyed by opaque session IDs. Only the map is
// guarded; each View belongs to exactly one session.
type Manager struct {
	mu    sync.RWMutex
	views map[string]*View
}

func NewManager() *Manager {
	return &Manager{views: make(map[string]*View)}
}

// Create opens a new session.
func (m *Manager) Create() (string, *View) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	v := NewView()
	m.views[id] = v
	return id, v
}

func (m *Manager) Get(id string) (*View, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.views[id]
	return v, ok
}

// GetOrCreate resolves the session for id, or opens a fresh one when id is
// empty or unknown (e.g. after a server restart).
func (m *Manager) GetOrCreate(id string) (string, *View) {
	if id != "" {
		if v, ok := m.Get(id); ok {
			return id, v
		}
	}
	return m.Create()
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.views, id)
}
