package collection

import (
	"context"
	"testing"

	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/infrastructure/storage/memory"
	"resepnusantara/internal/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int    `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type itemKey struct {
	ID   int
	Kind string
}

func keyOf(it item) itemKey { return itemKey{ID: it.ID, Kind: it.Kind} }

func newRepo(t *testing.T) (*Repository[item, itemKey], *memory.Storage) {
	t.Helper()
	medium := memory.New(0)
	store := keyed.NewStore(medium, logger.Discard())
	return NewRepository(store, "items", keyOf, logger.Discard()), medium
}

func TestRepository_EmptyStore(t *testing.T) {
	repo, _ := newRepo(t)

	res := repo.GetAll(context.Background())

	assert.Equal(t, keyed.StatusAbsent, res.Status)
	assert.NotNil(t, res.Value)
	assert.Empty(t, res.Value)
}

func TestRepository_Add(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	res := repo.Add(ctx, item{ID: 1, Kind: "a", Label: "first"})
	require.True(t, res.OK())
	res = repo.Add(ctx, item{ID: 2, Kind: "a"})
	require.True(t, res.OK())

	assert.Len(t, res.Value, 2)
	assert.Equal(t, 1, res.Value[0].ID)
	assert.Equal(t, 2, res.Value[1].ID)
	assert.True(t, repo.Contains(ctx, itemKey{ID: 1, Kind: "a"}))
}

func TestRepository_Add_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	once := repo.Add(ctx, item{ID: 1, Kind: "a", Label: "first"})
	twice := repo.Add(ctx, item{ID: 1, Kind: "a", Label: "second"})

	assert.Equal(t, len(once.Value), len(twice.Value))
	assert.Equal(t, "first", twice.Value[0].Label)
}

func TestRepository_SameIDDifferentKind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	repo.Add(ctx, item{ID: 1, Kind: "a"})
	res := repo.Add(ctx, item{ID: 1, Kind: "b"})

	assert.Len(t, res.Value, 2)
}

func TestRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	repo.Add(ctx, item{ID: 1, Kind: "a"})
	repo.Add(ctx, item{ID: 2, Kind: "a"})

	res := repo.Remove(ctx, itemKey{ID: 1, Kind: "a"})

	require.True(t, res.OK())
	assert.Equal(t, []item{{ID: 2, Kind: "a"}}, res.Value)
	assert.False(t, repo.Contains(ctx, itemKey{ID: 1, Kind: "a"}))
}

func TestRepository_Remove_Absent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)
	repo.Add(ctx, item{ID: 1, Kind: "a"})

	res := repo.Remove(ctx, itemKey{ID: 9, Kind: "a"})

	assert.Equal(t, []item{{ID: 1, Kind: "a"}}, res.Value)
}

func TestRepository_Corrupt(t *testing.T) {
	ctx := context.Background()
	repo, medium := newRepo(t)
	require.NoError(t, medium.Set(ctx, "items", []byte("not json")))

	res := repo.GetAll(ctx)

	assert.Equal(t, keyed.StatusCorrupt, res.Status)
	assert.Empty(t, res.Value)
	assert.False(t, repo.Contains(ctx, itemKey{ID: 1, Kind: "a"}))
}

func TestRepository_WriteFailed(t *testing.T) {
	ctx := context.Background()
	medium := memory.New(64)
	repo := NewRepository(keyed.NewStore(medium, logger.Discard()), "items", keyOf, logger.Discard())

	first := repo.Add(ctx, item{ID: 1, Kind: "a"})
	require.True(t, first.OK())

	res := repo.Add(ctx, item{ID: 2, Kind: "a", Label: "a label long enough to overflow the quota"})

	assert.Equal(t, keyed.StatusWriteFailed, res.Status)
	assert.Equal(t, first.Value, res.Value)
}

func TestRepository_FindAndClear(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)
	repo.Add(ctx, item{ID: 5, Kind: "a", Label: "five"})

	got, ok := repo.Find(ctx, itemKey{ID: 5, Kind: "a"})
	require.True(t, ok)
	assert.Equal(t, "five", got.Label)

	_, ok = repo.Find(ctx, itemKey{ID: 6, Kind: "a"})
	assert.False(t, ok)

	require.NoError(t, repo.Clear(ctx))
	assert.Empty(t, repo.GetAll(ctx).Value)
}
