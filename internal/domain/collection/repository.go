package collection

import (
	"context"

	"resepnusantara/internal/domain/keyed"

	"golang.org/x/exp/slog"
)

// Repository хранит упорядоченный список записей T в одном документе хранилища.
// Записи различаются ключом K; повторное добавление записи с тем же ключом - no-op.
// Все операции линейные по размеру коллекции.
type Repository[T any, K comparable] struct {
	store *keyed.Store
	key   string
	keyOf func(T) K
	log   *slog.Logger
}

func NewRepository[T any, K comparable](store *keyed.Store, key string, keyOf func(T) K, log *slog.Logger) *Repository[T, K] {
	return &Repository[T, K]{
		store: store,
		key:   key,
		keyOf: keyOf,
		log:   log.With("component", "collection", "key", key),
	}
}

// GetAll возвращает всю коллекцию; при отсутствии или порче документа - пустой список
func (r *Repository[T, K]) GetAll(ctx context.Context) keyed.Result[[]T] {
	return keyed.Read(ctx, r.store, r.key, []T{})
}

// Add добавляет запись в конец, если записи с таким ключом еще нет
func (r *Repository[T, K]) Add(ctx context.Context, rec T) keyed.Result[[]T] {
	k := r.keyOf(rec)
	res := keyed.Update(ctx, r.store, r.key, []T{}, func(items []T) ([]T, bool) {
		if indexOf(items, k, r.keyOf) >= 0 {
			return items, false
		}
		return append(items, rec), true
	})
	r.report("add", res)
	return res
}

// Remove удаляет все записи с ключом k; отсутствие записи не ошибка
func (r *Repository[T, K]) Remove(ctx context.Context, k K) keyed.Result[[]T] {
	res := keyed.Update(ctx, r.store, r.key, []T{}, func(items []T) ([]T, bool) {
		kept := make([]T, 0, len(items))
		for _, it := range items {
			if r.keyOf(it) != k {
				kept = append(kept, it)
			}
		}
		return kept, len(kept) != len(items)
	})
	r.report("remove", res)
	return res
}

// Contains - линейный поиск по ключу; при сбое чтения false
func (r *Repository[T, K]) Contains(ctx context.Context, k K) bool {
	return indexOf(r.GetAll(ctx).Value, k, r.keyOf) >= 0
}

// Find возвращает запись по ключу
func (r *Repository[T, K]) Find(ctx context.Context, k K) (T, bool) {
	items := r.GetAll(ctx).Value
	if i := indexOf(items, k, r.keyOf); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Clear удаляет документ коллекции целиком
func (r *Repository[T, K]) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}

func (r *Repository[T, K]) report(op string, res keyed.Result[[]T]) {
	if res.Failed() {
		r.log.Warn("collection operation degraded", "op", op, "status", res.Status.String(), "error", res.Err)
	}
}

func indexOf[T any, K comparable](items []T, k K, keyOf func(T) K) int {
	for i, it := range items {
		if keyOf(it) == k {
			return i
		}
	}
	return -1
}
