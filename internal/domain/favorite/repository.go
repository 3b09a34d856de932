package favorite

import (
	"context"
	"fmt"
	"time"

	"resepnusantara/internal/domain/collection"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/recipe"

	"golang.org/x/exp/slog"
)

// Repository - избранные рецепты, не более одной записи на пару (id, type)
type Repository struct {
	items *collection.Repository[Favorite, recipe.Ref]
	now   func() time.Time
	log   *slog.Logger
}

func NewRepository(store *keyed.Store, key string, log *slog.Logger) *Repository {
	return &Repository{
		items: collection.NewRepository(store, key, keyOf, log),
		now:   time.Now,
		log:   log.With("component", "favorite_repository"),
	}
}

func (r *Repository) GetAll(ctx context.Context) keyed.Result[[]Favorite] {
	return r.items.GetAll(ctx)
}

// ByType возвращает избранное одной категории
func (r *Repository) ByType(ctx context.Context, t recipe.Type) []Favorite {
	all := r.items.GetAll(ctx).Value
	out := make([]Favorite, 0, len(all))
	for _, f := range all {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

// Add сохраняет снимок рецепта; повторное добавление не меняет коллекцию
func (r *Repository) Add(ctx context.Context, rec recipe.Recipe) (keyed.Result[[]Favorite], error) {
	if err := rec.Ref().Validate(); err != nil {
		return keyed.Result[[]Favorite]{}, fmt.Errorf("add favorite: %w", err)
	}

	res := r.items.Add(ctx, Favorite{Recipe: rec, AddedAt: r.now().UTC()})
	r.log.Debug("favorite added", "recipe", rec.Ref().Key(), "total", len(res.Value), "status", res.Status.String())
	return res, nil
}

func (r *Repository) Remove(ctx context.Context, ref recipe.Ref) (keyed.Result[[]Favorite], error) {
	if err := ref.Validate(); err != nil {
		return keyed.Result[[]Favorite]{}, fmt.Errorf("remove favorite: %w", err)
	}

	res := r.items.Remove(ctx, ref)
	r.log.Debug("favorite removed", "recipe", ref.Key(), "total", len(res.Value), "status", res.Status.String())
	return res, nil
}

func (r *Repository) IsFavorite(ctx context.Context, ref recipe.Ref) bool {
	return r.items.Contains(ctx, ref)
}

// Toggle добавляет рецепт, если его нет в избранном, иначе удаляет.
// Возвращает состояние флага по фактическому содержимому коллекции.
func (r *Repository) Toggle(ctx context.Context, rec recipe.Recipe) (bool, keyed.Result[[]Favorite], error) {
	var (
		res keyed.Result[[]Favorite]
		err error
	)
	if r.IsFavorite(ctx, rec.Ref()) {
		res, err = r.Remove(ctx, rec.Ref())
	} else {
		res, err = r.Add(ctx, rec)
	}
	if err != nil {
		return false, res, err
	}

	for _, f := range res.Value {
		if f.Ref() == rec.Ref() {
			return true, res, nil
		}
	}
	return false, res, nil
}

// Clear удаляет все избранное
func (r *Repository) Clear(ctx context.Context) error {
	return r.items.Clear(ctx)
}
