package recipe

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-recipes",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes",
		Summary:     "Search the recipe catalog",
		Tags:        []string{"recipes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-recipe",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes/{type}/{id}",
		Summary:     "Get a recipe with its favorite flag and review summary",
		Tags:        []string{"recipes"},
		Middlewares: h.middleware,
	}
}
