package review

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-reviews",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes/{type}/{id}/reviews",
		Summary:     "List reviews of a recipe with count and average rating",
		Tags:        []string{"reviews"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID:   "add-review",
		Method:        http.MethodPost,
		Path:          "/api/v1/recipes/{type}/{id}/reviews",
		Summary:       "Add a review to a recipe",
		Tags:          []string{"reviews"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}
