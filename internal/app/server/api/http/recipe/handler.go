package recipe

import (
	"context"
	"strings"

	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/domain/review"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Catalog interface {
	Search(t recipe.Type, query string) []recipe.Recipe
	Get(ref recipe.Ref) (recipe.Recipe, error)
}

type Favorites interface {
	IsFavorite(ctx context.Context, ref recipe.Ref) bool
}

type Reviews interface {
	Summary(ctx context.Context, ref recipe.Ref) review.Summary
}

type Handler struct {
	catalog    Catalog
	favorites  Favorites
	reviews    Reviews
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(catalog Catalog, favorites Favorites, reviews Reviews, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		catalog:    catalog,
		favorites:  favorites,
		reviews:    reviews,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) list(_ context.Context, input *listInput) (*listOutput, error) {
	types := recipe.Types
	if strings.TrimSpace(input.Type) != "" {
		t, err := recipe.ParseType(input.Type)
		if err != nil {
			return nil, apiutil.RecipeError(err)
		}
		types = []recipe.Type{t}
	}

	found := make([]recipe.Recipe, 0)
	for _, t := range types {
		found = append(found, h.catalog.Search(t, input.Q)...)
	}

	return &listOutput{
		Body: recipe.Paginate(found, input.Page, input.PerPage),
	}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	ref := input.Ref()
	rec, err := h.catalog.Get(ref)
	if err != nil {
		return nil, apiutil.RecipeError(err)
	}

	return &getOutput{
		Body: detail{
			Recipe:     rec,
			IsFavorite: h.favorites.IsFavorite(ctx, ref),
			Reviews:    h.reviews.Summary(ctx, ref),
		},
	}, nil
}
