package image

import (
	"context"
	"errors"

	"resepnusantara/internal/domain/cache"
	"resepnusantara/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Fetcher interface {
	Route(url string) (cache.Route, bool)
	Fetch(ctx context.Context, url string) (cache.Fetched, error)
}

type Handler struct {
	fetcher    Fetcher
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(fetcher Fetcher, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		fetcher:    fetcher,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.fetchOp(), h.fetch)
}

func (h *Handler) fetch(ctx context.Context, input *fetchInput) (*fetchOutput, error) {
	if route, ok := h.fetcher.Route(input.URL); !ok || route.Cache != cache.ImagesCache {
		return nil, huma.Error400BadRequest("url is not a cacheable image")
	}

	res, err := h.fetcher.Fetch(ctx, input.URL)
	if errors.Is(err, cache.ErrForbiddenHost) {
		return nil, huma.Error400BadRequest("image host is not allowed")
	}
	if err != nil {
		h.log.Warn("image fetch failed", "url", input.URL, logger.Err(err))
		return nil, huma.Error502BadGateway("failed to fetch image", err)
	}

	hit := "miss"
	if res.Source == cache.SourceCache {
		hit = "hit"
	}
	contentType := res.Entry.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &fetchOutput{
		ContentType: contentType,
		ETag:        `"` + res.Entry.ETag + `"`,
		Cache:       hit,
		Body:        res.Entry.Body,
	}, nil
}
