// Package api собирает HTTP API поверх app.App.
//
//	GET    /api/v1/health
//	GET    /api/v1/recipes                       ?type=&q=&page=&per_page=
//	GET    /api/v1/recipes/{type}/{id}
//	GET    /api/v1/recipes/{type}/{id}/reviews
//	POST   /api/v1/recipes/{type}/{id}/reviews
//	GET    /api/v1/favorites                     ?type=
//	POST   /api/v1/favorites
//	GET    /api/v1/favorites/{type}/{id}
//	DELETE /api/v1/favorites/{type}/{id}
//	GET    /api/v1/profile
//	PATCH  /api/v1/profile
//	PUT    /api/v1/profile/avatar
//	GET    /api/v1/caches
//	DELETE /api/v1/caches
//	GET    /api/v1/caches/{name}
//	DELETE /api/v1/caches/{name}
//	GET    /api/v1/images                        ?url=
package api

import (
	"resepnusantara/internal/app"
	cacheAPI "resepnusantara/internal/app/server/api/http/cache"
	favoriteAPI "resepnusantara/internal/app/server/api/http/favorite"
	healthAPI "resepnusantara/internal/app/server/api/http/health"
	imageAPI "resepnusantara/internal/app/server/api/http/image"
	"resepnusantara/internal/app/server/api/http/middleware"
	"resepnusantara/internal/app/server/api/http/middleware/logger"
	profileAPI "resepnusantara/internal/app/server/api/http/profile"
	recipeAPI "resepnusantara/internal/app/server/api/http/recipe"
	reviewAPI "resepnusantara/internal/app/server/api/http/review"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

const (
	title   = "Resep Nusantara API"
	version = "1.0.0"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Recipe   *recipeAPI.Handler
	Favorite *favoriteAPI.Handler
	Review   *reviewAPI.Handler
	Profile  *profileAPI.Handler
	Cache    *cacheAPI.Handler
	Image    *imageAPI.Handler
}

// New создает *chi.Mux со всеми операциями
func New(a *app.App, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	Register(humachi.New(mux, huma.DefaultConfig(title, version)), a, log)
	return mux
}

// Register регистрирует операции в готовом huma.API
func Register(api huma.API, a *app.App, log *slog.Logger) {
	h := handlers(a, log)
	h.Health.SetupRoutes(api)
	h.Recipe.SetupRoutes(api)
	h.Favorite.SetupRoutes(api)
	h.Review.SetupRoutes(api)
	h.Profile.SetupRoutes(api)
	h.Cache.SetupRoutes(api)
	h.Image.SetupRoutes(api)
}

func handlers(a *app.App, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(a, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	recipeHandler := recipeAPI.NewHandler(a.Catalog, a.Favorites, a.Reviews, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	favoriteHandler := favoriteAPI.NewHandler(a.Favorites, a.Catalog, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	reviewHandler := reviewAPI.NewHandler(a.Reviews, a.Catalog, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	profileHandler := profileAPI.NewHandler(a.Profile, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	cacheHandler := cacheAPI.NewHandler(a.Inspector, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	imageHandler := imageAPI.NewHandler(a.Fetcher, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Recipe:   recipeHandler,
		Favorite: favoriteHandler,
		Review:   reviewHandler,
		Profile:  profileHandler,
		Cache:    cacheHandler,
		Image:    imageHandler,
	}
}
