package host

import (
	"sort"
	"strings"
	"sync"
)

// MemStorage is an in-memory Storage with the same semantics the chain
// provides: ascending key scans and read-your-writes within one execution.
// Snapshot/Restore let a harness emulate the host's all-or-nothing
// transaction model around a command.
type MemStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemStorage() *MemStorage {
	return &MemStorage{data: make(map[string]string)}
}

func (m *MemStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MemStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *MemStorage) Keys(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current state.
func (m *MemStorage) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := make(map[string]string, len(m.data))
	for k, v := range m.data {
		snap[k] = v
	}
	return snap
}

// Restore replaces the state with a previously taken snapshot.
func (m *MemStorage) Restore(snap map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string, len(snap))
	for k, v := range snap {
		m.data[k] = v
	}
}
