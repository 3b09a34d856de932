package cache

import (
	"context"

	"resepnusantara/internal/domain/cache"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Inspector interface {
	List(ctx context.Context) []cache.Info
	Inspect(ctx context.Context, name string) *cache.Detail
	Clear(ctx context.Context, name string) bool
	ClearAll(ctx context.Context) bool
}

type Handler struct {
	inspector  Inspector
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(inspector Inspector, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		inspector:  inspector,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.inspectOp(), h.inspect)
	huma.Register(api, h.clearOp(), h.clear)
	huma.Register(api, h.clearAllOp(), h.clearAll)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	out := &listOutput{}
	out.Body.Caches = h.inspector.List(ctx)
	return out, nil
}

func (h *Handler) inspect(ctx context.Context, input *nameInput) (*inspectOutput, error) {
	d := h.inspector.Inspect(ctx, input.Name)
	if d == nil {
		return nil, huma.Error503ServiceUnavailable("cache storage is unavailable")
	}
	return &inspectOutput{Body: d}, nil
}

func (h *Handler) clear(ctx context.Context, input *nameInput) (*clearOutput, error) {
	out := &clearOutput{}
	out.Body.Cleared = h.inspector.Clear(ctx, input.Name)
	return out, nil
}

func (h *Handler) clearAll(ctx context.Context, _ *listInput) (*clearOutput, error) {
	out := &clearOutput{}
	out.Body.Cleared = h.inspector.ClearAll(ctx)
	return out, nil
}
