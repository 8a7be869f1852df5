package kvstore

import (
	"context"
	"sync"
)

// MemoryBackend mantém as chaves em memória. Usado em testes e com
// STORAGE_DRIVER=memory (nada sobrevive ao processo).
type MemoryBackend struct {
	mu          sync.RWMutex
	data        map[string]string
	unavailable bool
}

// NewMemoryBackend cria um backend em memória vazio.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

// SetUnavailable simula a perda do armazenamento: todas as operações
// passam a retornar ErrUnavailable.
func (m *MemoryBackend) SetUnavailable(unavailable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = unavailable
}

func (m *MemoryBackend) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return "", false, ErrUnavailable
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	m.data[key] = value
	return nil
}

func (m *MemoryBackend) SetMany(ctx context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *MemoryBackend) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return ErrUnavailable
	}
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
