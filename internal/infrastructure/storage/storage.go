package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrClosed        = errors.New("storage is closed")
)

// Medium - персистентное локальное key-value хранилище.
// Set перезаписывает значение ключа атомарно, транзакций между ключами нет.
type Medium interface {
	// Get возвращает ErrNotFound, если ключа нет
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete не считает отсутствие ключа ошибкой
	Delete(ctx context.Context, key string) error
	// Keys возвращает отсортированные ключи с заданным префиксом
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
