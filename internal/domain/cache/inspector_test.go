package cache

import (
	"context"
	"errors"
	"testing"

	"resepnusantara/internal/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingMedium struct {
	mock.Mock
}

func (m *failingMedium) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *failingMedium) Set(ctx context.Context, key string, value []byte) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *failingMedium) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *failingMedium) Keys(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *failingMedium) Close() error {
	return m.Called().Error(0)
}

func TestInspector_ListAndInspect(t *testing.T) {
	ctx := context.Background()
	caches, _, c := newTestStorage(t, DefaultPolicies())
	insp := NewInspector(caches, logger.Discard())

	assert.Empty(t, insp.List(ctx))

	require.NoError(t, caches.Put(ctx, ImagesCache, Entry{URL: "https://x.test/a.png", Body: make([]byte, 1024)}))
	c.advance(1)
	require.NoError(t, caches.Put(ctx, ImagesCache, Entry{URL: "https://x.test/b.png", Body: make([]byte, 512)}))

	infos := insp.List(ctx)
	require.Len(t, infos, 1)
	assert.Equal(t, Info{Name: ImagesCache, Entries: 2, Size: 1536, SizeFormatted: "1.5 KB"}, infos[0])

	d := insp.Inspect(ctx, ImagesCache)
	require.NotNil(t, d)
	assert.Equal(t, 2, d.TotalEntries)
	assert.Equal(t, int64(1536), d.TotalSize)
	assert.Equal(t, "1.5 KB", d.TotalSizeFormatted)
	assert.Equal(t, []EntryInfo{
		{URL: "https://x.test/a.png", Size: 1024, SizeFormatted: "1 KB"},
		{URL: "https://x.test/b.png", Size: 512, SizeFormatted: "512 Bytes"},
	}, d.Entries)

	empty := insp.Inspect(ctx, "unknown")
	require.NotNil(t, empty)
	assert.Zero(t, empty.TotalEntries)
	assert.Equal(t, "0 Bytes", empty.TotalSizeFormatted)
	assert.Empty(t, empty.Entries)
}

func TestInspector_Clear(t *testing.T) {
	ctx := context.Background()
	caches, _, _ := newTestStorage(t, nil)
	insp := NewInspector(caches, logger.Discard())

	require.NoError(t, caches.Put(ctx, ImagesCache, Entry{URL: "https://x.test/a.png", Body: []byte("a")}))
	require.NoError(t, caches.Put(ctx, DataCache, Entry{URL: "https://x.test/api/a", Body: []byte("a")}))

	assert.True(t, insp.Clear(ctx, ImagesCache))
	assert.False(t, insp.Clear(ctx, ImagesCache))
	assert.False(t, insp.Clear(ctx, "bad/name"))

	assert.True(t, insp.ClearAll(ctx))
	assert.Empty(t, insp.List(ctx))
}

func TestInspector_MediumFailure(t *testing.T) {
	ctx := context.Background()
	medium := new(failingMedium)
	medium.On("Keys", mock.Anything, mock.Anything).Return(nil, errors.New("disk gone"))

	insp := NewInspector(NewStorage(medium, "cache/", nil, logger.Discard()), logger.Discard())

	assert.Equal(t, []Info{}, insp.List(ctx))
	assert.Nil(t, insp.Inspect(ctx, ImagesCache))
	assert.False(t, insp.Clear(ctx, ImagesCache))
	assert.False(t, insp.ClearAll(ctx))
}
