package snapshot

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
)

// Memory is an in-process Table.
type Memory struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]Values
}

// NewMemory returns an empty Memory table.
func NewMemory() *Memory {
	return &Memory{clients: make(map[uuid.UUID]Values)}
}

// Get returns the stored values for keys.
func (m *Memory) Get(_ context.Context, clientID uuid.UUID, keys ...Key) (Values, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.clients[clientID].pick(keys...), nil
}

// Put stores values for the client.
func (m *Memory) Put(_ context.Context, clientID uuid.UUID, values Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.clients[clientID].clone()
	for k, v := range values {
		stored[k] = v
	}
	m.clients[clientID] = stored

	return nil
}

// Remove deletes keys for the client.
func (m *Memory) Remove(_ context.Context, clientID uuid.UUID, keys ...Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.clients[clientID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(stored, k)
	}
	if len(stored) == 0 {
		delete(m.clients, clientID)
	}

	return nil
}
