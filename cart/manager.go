package cart

import (
	"fmt"
	"sync"
)

// Manager keeps at most one sale and one purchase working order per user
// session. Orders live only in memory.
type Manager struct {
	mu     sync.Mutex
	orders map[string]*WorkingOrder
}

func NewManager() *Manager {
	return &Manager{orders: make(map[string]*WorkingOrder)}
}

func key(userID uint, kind Kind) string {
	return fmt.Sprintf("%d/%s", userID, kind)
}

// Begin starts a fresh working order for the session, replacing any
// existing one of the same kind.
func (m *Manager) Begin(userID uint, kind Kind) *WorkingOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := New(kind)
	m.orders[key(userID, kind)] = w
	return w
}

// Get returns the session's working order of the given kind, creating an
// empty one if the session has not begun a flow yet.
func (m *Manager) Get(userID uint, kind Kind) *WorkingOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, kind)
	if w, ok := m.orders[k]; ok {
		return w
	}
	w := New(kind)
	m.orders[k] = w
	return w
}

// Drop removes the session's working order, e.g. on logout.
func (m *Manager) Drop(userID uint, kind Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, key(userID, kind))
}
