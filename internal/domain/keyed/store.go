package keyed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"resepnusantara/internal/infrastructure/storage"
	"resepnusantara/internal/utils/logger"

	"golang.org/x/exp/slog"
)

// ErrNoMedium возвращается, если Store создан без хранилища
var ErrNoMedium = errors.New("storage is not configured")

// Store хранит JSON-документы в storage.Medium под строковыми ключами.
// Ошибки хранилища и битый JSON не прерывают работу: чтение деградирует
// до значения по умолчанию, а исход помечается в Result.
type Store struct {
	medium storage.Medium
	log    *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(medium storage.Medium, log *slog.Logger) *Store {
	return &Store{
		medium: medium,
		log:    log.With("component", "keyed_store"),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Read возвращает документ key или fallback, если документа нет или он не читается
func Read[T any](ctx context.Context, s *Store, key string, fallback T) Result[T] {
	if s == nil || s.medium == nil {
		return Result[T]{Value: fallback, Status: StatusUnavailable, Err: ErrNoMedium}
	}

	raw, err := s.medium.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return Result[T]{Value: fallback, Status: StatusAbsent}
	}
	if err != nil {
		s.log.Warn("failed to read document", "key", key, logger.Err(err))
		return Result[T]{Value: fallback, Status: StatusUnavailable, Err: fmt.Errorf("read %s: %w", key, err)}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Result[T]{Value: fallback, Status: StatusAbsent}
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		s.log.Warn("malformed document, using default", "key", key, logger.Err(err))
		return Result[T]{Value: fallback, Status: StatusCorrupt, Err: fmt.Errorf("decode %s: %w", key, err)}
	}

	return Result[T]{Value: v, Status: StatusOK}
}

// Write сериализует value в JSON и перезаписывает документ key целиком
func Write[T any](ctx context.Context, s *Store, key string, value T) error {
	if s == nil || s.medium == nil {
		return ErrNoMedium
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("failed to encode document", "key", key, logger.Err(err))
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.medium.Set(ctx, key, raw); err != nil {
		s.log.Error("failed to write document", "key", key, logger.Err(err))
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Update выполняет read-modify-write документа key.
// fn получает текущее значение и возвращает новое и признак изменения;
// без изменения запись не выполняется. Писатели одного ключа внутри процесса
// сериализуются, между процессами действует last-writer-wins.
// Если хранилище недоступно при чтении, fn не вызывается.
// При неудачной записи возвращается перечитанное из хранилища состояние.
func Update[T any](ctx context.Context, s *Store, key string, fallback T, fn func(current T) (T, bool)) Result[T] {
	if s == nil || s.medium == nil {
		return Result[T]{Value: fallback, Status: StatusUnavailable, Err: ErrNoMedium}
	}

	unlock := s.lock(key)
	defer unlock()

	current := Read(ctx, s, key, fallback)
	if current.Status == StatusUnavailable {
		return current
	}

	next, changed := fn(current.Value)
	if !changed {
		return Result[T]{Value: next, Status: current.Status, Err: current.Err}
	}

	if err := Write(ctx, s, key, next); err != nil {
		last := Read(ctx, s, key, fallback)
		return Result[T]{Value: last.Value, Status: StatusWriteFailed, Err: err}
	}

	return Result[T]{Value: next, Status: StatusOK}
}

// Delete удаляет документ key
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil || s.medium == nil {
		return ErrNoMedium
	}

	unlock := s.lock(key)
	defer unlock()

	if err := s.medium.Delete(ctx, key); err != nil {
		s.log.Error("failed to delete document", "key", key, logger.Err(err))
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) lock(key string) func() {
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
