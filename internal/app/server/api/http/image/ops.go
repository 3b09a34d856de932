package image

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) fetchOp() huma.Operation {
	return huma.Operation{
		OperationID: "fetch-image",
		Method:      http.MethodGet,
		Path:        "/api/v1/images",
		Summary:     "Fetch a recipe image through the image cache",
		Tags:        []string{"images"},
		Middlewares: h.middleware,
	}
}
