package blockstore

import (
	"context"
	"sync"
)

// Memory is a map backed Store for tests and embedding. Safe for concurrent
// use.
type Memory struct {
	mu     sync.RWMutex
	blocks map[Ref][]byte
	tags   map[string]Ref
}

func NewMemory() *Memory {
	return &Memory{
		blocks: make(map[Ref][]byte),
		tags:   make(map[string]Ref),
	}
}

func (m *Memory) Put(_ context.Context, data []byte) (Ref, error) {
	ref := NewRef(data)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blocks[ref]; ok {
		return ref, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.blocks[ref] = cp
	return ref, nil
}

func (m *Memory) Get(_ context.Context, ref Ref) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blocks[ref]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *Memory) SetTag(_ context.Context, name string, ref Ref) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tags[name] = ref
	return nil
}

func (m *Memory) Tag(_ context.Context, name string) (Ref, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ref, ok := m.tags[name]
	if !ok {
		return Ref{}, ErrNotFound
	}
	return ref, nil
}

// Len returns the number of stored blocks. Tests use it to check that pure
// queries never write.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blocks)
}
