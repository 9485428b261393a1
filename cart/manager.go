package cart

import (
	"context"
	"sync"
)

// Manager owns the cart stores for all live sessions, keyed by session id
// (the guest id while anonymous, the user id after login). Stores are created
// lazily and hydrated on first use; auth handlers drive the state transitions
// explicitly instead of the stores reading ambient globals.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	backend Backend
	local   KV
}

func NewManager(backend Backend, local KV) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		backend: backend,
		local:   local,
	}
}

// Session returns the store for the given session, creating and hydrating it
// if needed. userID is empty for guest sessions.
func (m *Manager) Session(ctx context.Context, sessionID, userID string) (*Store, error) {
	m.mu.Lock()
	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(sessionID, m.backend, m.local)
		store.userID = userID
		m.stores[sessionID] = store
		m.mu.Unlock()
		if err := store.Load(ctx); err != nil {
			// Drop the store so the next request retries hydration instead
			// of serving an empty cart forever.
			m.mu.Lock()
			delete(m.stores, sessionID)
			m.mu.Unlock()
			return store, err
		}
		return store, nil
	}
	m.mu.Unlock()
	return store, nil
}

// Login transitions a guest session to an authenticated one. The guest store
// is dropped and the user's store replaces its contents with the remote cart
// (replace-on-login; the anonymous entries are not merged).
func (m *Manager) Login(ctx context.Context, guestSessionID, userID string) (*Store, error) {
	m.mu.Lock()
	delete(m.stores, guestSessionID)
	store, ok := m.stores[userID]
	if !ok {
		store = NewStore(userID, m.backend, m.local)
		m.stores[userID] = store
	}
	m.mu.Unlock()

	if err := store.Login(ctx, userID); err != nil {
		return store, err
	}
	return store, nil
}

// Logout clears the user's store and forgets the session.
func (m *Manager) Logout(sessionID string) {
	m.mu.Lock()
	store, ok := m.stores[sessionID]
	delete(m.stores, sessionID)
	m.mu.Unlock()

	if ok {
		store.Logout()
	}
}

// End drops a session without touching its persisted state.
func (m *Manager) End(sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
}
