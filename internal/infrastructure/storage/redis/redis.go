package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"resepnusantara/internal/infrastructure/storage"

	"github.com/go-redis/redis/v8"
)

const scanBatch = 100

type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix отделяет ключи приложения от остальных данных в базе
	Prefix string
}

type Storage struct {
	inner  *redis.Client
	prefix string
}

func New(ctx context.Context, opts Options) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return &Storage{inner: client, prefix: opts.Prefix}, nil
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.inner.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.inner.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.inner.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Keys(ctx context.Context, prefix string) ([]string, error) {
	match := escapePattern(s.prefix+prefix) + "*"

	keys := make([]string, 0)
	iter := s.inner.Scan(ctx, 0, match, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *Storage) Close() error {
	return s.inner.Close()
}

// escapePattern экранирует glob-символы, чтобы SCAN MATCH искал по буквальному префиксу
func escapePattern(p string) string {
	var b strings.Builder
	for _, r := range p {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
