package localstore

import "sync"

type memStore struct {
	mu    sync.Mutex
	items map[string]string
}

// NewMemory returns a volatile Store. Tests use it where on-disk
// persistence is not the thing under test.
func NewMemory() Store { return &memStore{items: map[string]string{}} }

func (m *memStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
