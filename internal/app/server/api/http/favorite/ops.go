package favorite

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorite recipes",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "add-favorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites",
		Summary:     "Add a catalog recipe to favorites",
		Description: "Stores a snapshot of the recipe. Adding a recipe twice keeps a single entry.",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) checkOp() huma.Operation {
	return huma.Operation{
		OperationID: "check-favorite",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/{type}/{id}",
		Summary:     "Check whether a recipe is a favorite",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID: "remove-favorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/favorites/{type}/{id}",
		Summary:     "Remove a recipe from favorites",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}
