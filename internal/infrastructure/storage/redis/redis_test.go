package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"resepnusantara/internal/infrastructure/storage"
	"resepnusantara/internal/infrastructure/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тесты требуют живой Redis: TEST_REDIS_ADDR=localhost:6379
func TestStorage_Contract(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	storagetest.Run(t, func(t *testing.T) storage.Medium {
		ctx := context.Background()
		prefix := fmt.Sprintf("resep-test:%d:", time.Now().UnixNano())

		s, err := New(ctx, Options{Addr: addr, Prefix: prefix})
		require.NoError(t, err)

		t.Cleanup(func() {
			keys, _ := s.Keys(ctx, "")
			for _, k := range keys {
				_ = s.Delete(ctx, k)
			}
			_ = s.Close()
		})
		return s
	})
}

func TestEscapePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cache/recipe-images-cache/", want: "cache/recipe-images-cache/"},
		{in: "a*b?", want: `a\*b\?`},
		{in: `[x]\`, want: `\[x\]\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapePattern(tt.in))
		})
	}
}
