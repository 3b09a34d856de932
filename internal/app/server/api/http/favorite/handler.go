package favorite

import (
	"context"
	"strings"

	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/favorite"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/recipe"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Repository interface {
	GetAll(ctx context.Context) keyed.Result[[]favorite.Favorite]
	Add(ctx context.Context, rec recipe.Recipe) (keyed.Result[[]favorite.Favorite], error)
	Remove(ctx context.Context, ref recipe.Ref) (keyed.Result[[]favorite.Favorite], error)
	IsFavorite(ctx context.Context, ref recipe.Ref) bool
}

type Catalog interface {
	Get(ref recipe.Ref) (recipe.Recipe, error)
}

type Handler struct {
	repo       Repository
	catalog    Catalog
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(repo Repository, catalog Catalog, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		repo:       repo,
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.checkOp(), h.check)
	huma.Register(api, h.removeOp(), h.remove)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	res := h.repo.GetAll(ctx)

	items := res.Value
	if strings.TrimSpace(input.Type) != "" {
		t, err := recipe.ParseType(input.Type)
		if err != nil {
			return nil, apiutil.RecipeError(err)
		}
		items = make([]favorite.Favorite, 0, len(res.Value))
		for _, f := range res.Value {
			if f.Type == t {
				items = append(items, f)
			}
		}
	}

	return respond(res.Status, items), nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*listOutput, error) {
	rec, err := h.catalog.Get(recipe.Ref{ID: input.Body.ID, Type: recipe.Type(input.Body.Type)})
	if err != nil {
		return nil, apiutil.RecipeError(err)
	}

	res, err := h.repo.Add(ctx, rec)
	if err != nil {
		return nil, apiutil.RecipeError(err)
	}
	return respond(res.Status, res.Value), nil
}

func (h *Handler) check(ctx context.Context, input *refInput) (*checkOutput, error) {
	out := &checkOutput{}
	out.Body.Favorite = h.repo.IsFavorite(ctx, input.Ref())
	return out, nil
}

func (h *Handler) remove(ctx context.Context, input *refInput) (*listOutput, error) {
	res, err := h.repo.Remove(ctx, input.Ref())
	if err != nil {
		return nil, apiutil.RecipeError(err)
	}
	return respond(res.Status, res.Value), nil
}

func respond(status keyed.Status, items []favorite.Favorite) *listOutput {
	if items == nil {
		items = []favorite.Favorite{}
	}
	return &listOutput{
		Body: listResponse{
			Status: status.String(),
			Items:  items,
		},
	}
}
