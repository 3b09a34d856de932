package profile

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/keyed"
	"resepnusantara/internal/domain/profile"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Repository interface {
	Get(ctx context.Context) keyed.Result[profile.Profile]
	Update(ctx context.Context, patch profile.Patch) (keyed.Result[profile.Profile], error)
	UpdateAvatarImage(ctx context.Context, img io.Reader) (keyed.Result[profile.Profile], error)
}

type Handler struct {
	repo       Repository
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(repo Repository, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		repo:       repo,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.avatarOp(), h.avatar)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*profileOutput, error) {
	return respond(h.repo.Get(ctx)), nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*profileOutput, error) {
	res, err := h.repo.Update(ctx, input.Body)
	if err != nil {
		return nil, profileError(err)
	}
	return respond(res), nil
}

func (h *Handler) avatar(ctx context.Context, input *avatarInput) (*profileOutput, error) {
	res, err := h.repo.UpdateAvatarImage(ctx, bytes.NewReader(input.RawBody))
	if err != nil {
		return nil, profileError(err)
	}
	return respond(res), nil
}

func profileError(err error) error {
	var verr *profile.ValidationError
	switch {
	case errors.As(err, &verr):
		return apiutil.Validation(err, verr.Fields)
	case errors.Is(err, profile.ErrEmptyPatch):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, profile.ErrNotImage):
		return huma.NewError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, profile.ErrImageTooLarge):
		return huma.NewError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusRequestTimeout, err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}

func respond(res keyed.Result[profile.Profile]) *profileOutput {
	return &profileOutput{
		Body: profileResponse{
			Status:  res.Status.String(),
			Profile: res.Value,
		},
	}
}
