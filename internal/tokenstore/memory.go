package tokenstore

import "sync"

// Memory keeps secrets for the lifetime of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty session-scoped store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]

	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value

	return nil
}

func (m *Memory) Clear(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *Memory) Has(key string) (bool, error) {
	v, ok, _ := m.Get(key)

	return ok && v != "", nil
}
