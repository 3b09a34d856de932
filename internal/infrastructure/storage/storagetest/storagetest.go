// Package storagetest содержит общий набор тестов для реализаций storage.Medium.
package storagetest

import (
	"context"
	"testing"

	"resepnusantara/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run прогоняет контракт Medium на хранилище, созданном factory
func Run(t *testing.T, factory func(t *testing.T) storage.Medium) {
	t.Helper()

	t.Run("get missing key", func(t *testing.T) {
		m := factory(t)
		_, err := m.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		m := factory(t)
		ctx := context.Background()

		require.NoError(t, m.Set(ctx, "resep-nusantara-favorites", []byte(`[{"id":1}]`)))
		got, err := m.Get(ctx, "resep-nusantara-favorites")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		m := factory(t)
		ctx := context.Background()

		require.NoError(t, m.Set(ctx, "k", []byte("first")))
		require.NoError(t, m.Set(ctx, "k", []byte("second")))
		got, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("delete", func(t *testing.T) {
		m := factory(t)
		ctx := context.Background()

		require.NoError(t, m.Set(ctx, "k", []byte("v")))
		require.NoError(t, m.Delete(ctx, "k"))
		_, err := m.Get(ctx, "k")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// Повторное удаление не ошибка
		assert.NoError(t, m.Delete(ctx, "k"))
	})

	t.Run("keys by prefix sorted", func(t *testing.T) {
		m := factory(t)
		ctx := context.Background()

		for _, k := range []string{"cache/b/2", "cache/a/1", "cache/b/1", "profile"} {
			require.NoError(t, m.Set(ctx, k, []byte("x")))
		}

		keys, err := m.Keys(ctx, "cache/b/")
		require.NoError(t, err)
		assert.Equal(t, []string{"cache/b/1", "cache/b/2"}, keys)

		keys, err = m.Keys(ctx, "cache/")
		require.NoError(t, err)
		assert.Equal(t, []string{"cache/a/1", "cache/b/1", "cache/b/2"}, keys)

		keys, err = m.Keys(ctx, "nothing/")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("canceled context", func(t *testing.T) {
		m := factory(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, m.Set(ctx, "k", []byte("v")))
		_, err := m.Get(ctx, "k")
		assert.Error(t, err)
	})
}
