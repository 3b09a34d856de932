package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"resepnusantara/internal/infrastructure/storage"
	"resepnusantara/internal/utils/logger"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/slog"
)

var ErrInvalidName = errors.New("invalid cache name")

// Entry - закешированный ответ
type Entry struct {
	URL         string    `json:"url"`
	ContentType string    `json:"content_type,omitempty"`
	Body        []byte    `json:"body"`
	ETag        string    `json:"etag"`
	StoredAt    time.Time `json:"stored_at"`
}

func (e Entry) Size() int64 {
	return int64(len(e.Body))
}

// Digest - BLAKE2b-256 в hex
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Storage - именованные кеши поверх storage.Medium.
// Запись хранится под ключом <prefix><name>/<digest(url)>.
type Storage struct {
	medium   storage.Medium
	prefix   string
	policies map[string]Policy
	now      func() time.Time
	log      *slog.Logger

	mu sync.Mutex
}

func NewStorage(medium storage.Medium, prefix string, policies map[string]Policy, log *slog.Logger) *Storage {
	if policies == nil {
		policies = map[string]Policy{}
	}
	return &Storage{
		medium:   medium,
		prefix:   prefix,
		policies: policies,
		now:      time.Now,
		log:      log.With("component", "cache_storage"),
	}
}

func validName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (s *Storage) namePrefix(name string) string {
	return s.prefix + name + "/"
}

func (s *Storage) entryKey(name, url string) string {
	return s.namePrefix(name) + Digest([]byte(url))
}

// Put сохраняет запись и применяет политику кеша
func (s *Storage) Put(ctx context.Context, name string, e Entry) error {
	if err := validName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.StoredAt = s.now().UTC()
	e.ETag = Digest(e.Body)
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := s.medium.Set(ctx, s.entryKey(name, e.URL), raw); err != nil {
		return fmt.Errorf("put %s in %s: %w", e.URL, name, err)
	}

	return s.expire(ctx, name)
}

// Match ищет запись по URL; просроченная запись удаляется и считается промахом
func (s *Storage) Match(ctx context.Context, name, url string) (Entry, bool, error) {
	if err := validName(name); err != nil {
		return Entry{}, false, err
	}

	key := s.entryKey(name, url)
	raw, err := s.medium.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("match %s in %s: %w", url, name, err)
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		s.log.Warn("dropping malformed cache entry", "cache", name, "key", key, logger.Err(err))
		_ = s.medium.Delete(ctx, key)
		return Entry{}, false, nil
	}

	if s.expired(name, e) {
		_ = s.medium.Delete(ctx, key)
		return Entry{}, false, nil
	}
	return e, true, nil
}

// Entries возвращает записи кеша, старые первыми. Нечитаемые записи пропускаются.
func (s *Storage) Entries(ctx context.Context, name string) ([]Entry, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	keys, err := s.medium.Keys(ctx, s.namePrefix(name))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		raw, err := s.medium.Get(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}

		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			s.log.Warn("skipping malformed cache entry", "cache", name, "key", key, logger.Err(err))
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StoredAt.Before(entries[j].StoredAt)
	})
	return entries, nil
}

// Names возвращает имена непустых кешей по алфавиту
func (s *Storage) Names(ctx context.Context) ([]string, error) {
	keys, err := s.medium.Keys(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("list caches: %w", err)
	}

	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, key := range keys {
		name, _, ok := strings.Cut(strings.TrimPrefix(key, s.prefix), "/")
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// Delete удаляет кеш целиком; false, если кеша не было
func (s *Storage) Delete(ctx context.Context, name string) (bool, error) {
	if err := validName(name); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.medium.Keys(ctx, s.namePrefix(name))
	if err != nil {
		return false, fmt.Errorf("list %s: %w", name, err)
	}
	for _, key := range keys {
		if err := s.medium.Delete(ctx, key); err != nil {
			return false, fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return len(keys) > 0, nil
}

func (s *Storage) expired(name string, e Entry) bool {
	p := s.policies[name]
	return p.MaxAge > 0 && s.now().Sub(e.StoredAt) > p.MaxAge
}

// expire удаляет просроченные записи и самые старые сверх MaxEntries
func (s *Storage) expire(ctx context.Context, name string) error {
	p, ok := s.policies[name]
	if !ok || (p.MaxEntries <= 0 && p.MaxAge <= 0) {
		return nil
	}

	entries, err := s.Entries(ctx, name)
	if err != nil {
		return err
	}

	fresh := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if s.expired(name, e) {
			if err := s.medium.Delete(ctx, s.entryKey(name, e.URL)); err != nil {
				return fmt.Errorf("expire %s: %w", e.URL, err)
			}
			continue
		}
		fresh = append(fresh, e)
	}

	if p.MaxEntries > 0 && len(fresh) > p.MaxEntries {
		for _, e := range fresh[:len(fresh)-p.MaxEntries] {
			if err := s.medium.Delete(ctx, s.entryKey(name, e.URL)); err != nil {
				return fmt.Errorf("evict %s: %w", e.URL, err)
			}
			s.log.Debug("cache entry evicted", "cache", name, "url", e.URL)
		}
	}
	return nil
}
