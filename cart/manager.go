package cart

import "sync"

// Manager hands out one live Session per key to the HTTP handlers, so
// every request for a key mutates the same in-memory cart. Websocket
// clients open additional sessions on the same key and the broker keeps
// them aligned.
type Manager struct {
	store  *Store
	broker *Broker

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(store *Store, broker *Broker) *Manager {
	return &Manager{
		store:    store,
		broker:   broker,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Session(key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[key]; ok {
		return s
	}
	s := Open(key, m.store, m.broker)
	m.sessions[key] = s
	return s
}

func (m *Manager) Store() *Store   { return m.store }
func (m *Manager) Broker() *Broker { return m.broker }
