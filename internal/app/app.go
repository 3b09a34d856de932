package app

import (
	"context"

	"resepnusantara/internal/config"
	"resepnusantara/internal/domain/cache"
	"resepnusantara/internal/domain/favorite"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/profile"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/domain/review"
	"resepnusantara/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

// App собирает репозитории поверх одного хранилища.
// Используется и сервером, и CLI.
type App struct {
	Config *config.Config

	Catalog   *recipe.Catalog
	Favorites *favorite.Repository
	Reviews   *review.Service
	Profile   *profile.Repository
	Caches    *cache.Storage
	Fetcher   *cache.Fetcher
	Inspector *cache.Inspector

	medium storage.Medium
	log    *slog.Logger
}

// New открывает хранилище по конфигурации и собирает приложение
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) *App {
	return NewWithMedium(cfg, openMediumOrMemory(ctx, cfg.Storage, log), log)
}

// NewWithMedium собирает приложение поверх готового хранилища
func NewWithMedium(cfg *config.Config, medium storage.Medium, log *slog.Logger) *App {
	store := keyed.NewStore(medium, log)
	caches := cache.NewStorage(medium, cfg.Cache.Prefix, cache.DefaultPolicies(), log)

	return &App{
		Config:    cfg,
		Catalog:   recipe.DefaultCatalog(),
		Favorites: favorite.NewRepository(store, cfg.Keys.Favorites, log),
		Reviews:   review.NewService(store, cfg.Keys.Reviews, log),
		Profile:   profile.NewRepository(store, cfg.Keys.Profile, log),
		Caches:    caches,
		Fetcher:   cache.NewFetcher(caches, cache.DefaultRoutes(), cache.NewClient(cfg.Cache.FetchTimeout), log),
		Inspector: cache.NewInspector(caches, log),
		medium:    medium,
		log:       log,
	}
}

func (a *App) Close() error {
	return a.medium.Close()
}

// Probe читает документ профиля и сообщает состояние хранилища
func (a *App) Probe(ctx context.Context) string {
	res := a.Profile.Get(ctx)
	if res.OK() {
		return keyed.StatusOK.String()
	}
	return res.Status.String()
}
