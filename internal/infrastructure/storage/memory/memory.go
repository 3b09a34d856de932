package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"resepnusantara/internal/infrastructure/storage"
)

// Storage хранит значения в памяти процесса.
// quota > 0 ограничивает суммарный объем значений в байтах.
type Storage struct {
	mu     sync.RWMutex
	data   map[string][]byte
	quota  int
	used   int
	closed bool
}

func New(quota int) *Storage {
	return &Storage{
		data:  make(map[string][]byte),
		quota: quota,
	}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrClosed
	}
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}
	used := s.used - len(s.data[key]) + len(value)
	if s.quota > 0 && used > s.quota {
		return storage.ErrQuotaExceeded
	}
	s.data[key] = append([]byte(nil), value...)
	s.used = used
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}
	s.used -= len(s.data[key])
	delete(s.data, key)
	return nil
}

func (s *Storage) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrClosed
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
