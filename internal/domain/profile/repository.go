package profile

import (
	"context"
	"io"

	"resepnusantara/internal/domain/keyed"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"
)

// Repository - единственный профиль пользователя в одном документе хранилища
type Repository struct {
	store    *keyed.Store
	key      string
	validate *validator.Validate
	log      *slog.Logger
}

func NewRepository(store *keyed.Store, key string, log *slog.Logger) *Repository {
	return &Repository{
		store:    store,
		key:      key,
		validate: newValidator(),
		log:      log.With("component", "profile_repository"),
	}
}

// Get возвращает сохраненный профиль или Default
func (r *Repository) Get(ctx context.Context) keyed.Result[Profile] {
	return keyed.Read(ctx, r.store, r.key, Default())
}

// Update накладывает patch на текущий профиль и сохраняет результат.
// Ошибка возвращается только для некорректного ввода.
func (r *Repository) Update(ctx context.Context, patch Patch) (keyed.Result[Profile], error) {
	if patch.IsEmpty() {
		return keyed.Result[Profile]{}, ErrEmptyPatch
	}

	var verr error
	res := keyed.Update(ctx, r.store, r.key, Default(), func(cur Profile) (Profile, bool) {
		next, err := Validate(r.validate, cur, patch)
		if err != nil {
			verr = err
			return cur, false
		}
		return next, true
	})
	if verr != nil {
		return keyed.Result[Profile]{}, verr
	}

	if res.Failed() {
		r.log.Error("failed to update profile", "status", res.Status.String(), "error", res.Err)
	} else {
		r.log.Debug("profile updated", "username", res.Value.Username)
	}
	return res, nil
}

func (r *Repository) UpdateUsername(ctx context.Context, username string) (keyed.Result[Profile], error) {
	return r.Update(ctx, Patch{Username: &username})
}

// UpdateAvatar принимает URL или data URL изображения
func (r *Repository) UpdateAvatar(ctx context.Context, avatar string) (keyed.Result[Profile], error) {
	return r.Update(ctx, Patch{Avatar: &avatar})
}

// UpdateAvatarImage кодирует изображение в data URL и сохраняет его как аватар
func (r *Repository) UpdateAvatarImage(ctx context.Context, img io.Reader) (keyed.Result[Profile], error) {
	uri, err := EncodeImage(ctx, img)
	if err != nil {
		return keyed.Result[Profile]{}, err
	}
	return r.UpdateAvatar(ctx, uri)
}

// Reset удаляет сохраненный профиль, после чего Get снова возвращает Default
func (r *Repository) Reset(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
