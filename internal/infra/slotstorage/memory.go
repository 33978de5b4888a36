package slotstorage

import (
	"context"
	"sync"
)

// MemoryStorage хранилище слотов в памяти процесса
// Используется при driver = "memory" и в тестах
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStorage создает пустое хранилище в памяти
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[name]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStorage) Set(_ context.Context, name string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[name] = append([]byte(nil), value...)
	return nil
}
