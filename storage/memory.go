// storage/memory.go
package storage

import "sync"

// Memory is an in-memory Credentials implementation used by tests and by
// one-shot CLI runs that should not touch the local database.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == "" {
		delete(m.values, key)
		return nil
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Token() string {
	return m.Get(KeyAuthToken)
}

func (m *Memory) SetToken(token string) error {
	return m.Set(KeyAuthToken, token)
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	return nil
}
