package review

import (
	"context"
	"errors"

	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/domain/review"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Service interface {
	Reviews(ctx context.Context, ref recipe.Ref) keyed.Result[[]review.Review]
	Add(ctx context.Context, ref recipe.Ref, d review.Draft) (keyed.Result[[]review.Review], error)
}

type Catalog interface {
	Get(ref recipe.Ref) (recipe.Recipe, error)
}

type Handler struct {
	service    Service
	catalog    Catalog
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Service, catalog Catalog, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		catalog:    catalog,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*reviewsOutput, error) {
	ref := input.Ref()
	if _, err := h.catalog.Get(ref); err != nil {
		return nil, apiutil.RecipeError(err)
	}
	return respond(h.service.Reviews(ctx, ref)), nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*reviewsOutput, error) {
	ref := input.Ref()
	if _, err := h.catalog.Get(ref); err != nil {
		return nil, apiutil.RecipeError(err)
	}

	res, err := h.service.Add(ctx, ref, review.Draft{
		UserName:  input.Body.UserName,
		Rating:    input.Body.Rating,
		Comment:   input.Body.Comment,
		Timestamp: input.Body.Timestamp,
	})
	if err != nil {
		var verr *review.ValidationError
		if errors.As(err, &verr) {
			return nil, apiutil.Validation(err, verr.Fields)
		}
		return nil, apiutil.RecipeError(err)
	}
	return respond(res), nil
}

func respond(res keyed.Result[[]review.Review]) *reviewsOutput {
	reviews := res.Value
	if reviews == nil {
		reviews = []review.Review{}
	}
	return &reviewsOutput{
		Body: reviewsResponse{
			Status:  res.Status.String(),
			Reviews: reviews,
			Summary: review.Summarize(reviews),
		},
	}
}
