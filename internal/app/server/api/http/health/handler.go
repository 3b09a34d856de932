package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Prober проверяет доступность хранилища
type Prober interface {
	Probe(ctx context.Context) string
}

type Handler struct {
	prober     Prober
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(prober Prober, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		prober:     prober,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: h.prober.Probe(ctx),
		},
	}, nil
}
