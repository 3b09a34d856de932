package cache

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-caches",
		Method:      http.MethodGet,
		Path:        "/api/v1/caches",
		Summary:     "List runtime caches with entry counts and sizes",
		Tags:        []string{"caches"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) inspectOp() huma.Operation {
	return huma.Operation{
		OperationID: "inspect-cache",
		Method:      http.MethodGet,
		Path:        "/api/v1/caches/{name}",
		Summary:     "List entries of one cache",
		Tags:        []string{"caches"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID: "clear-cache",
		Method:      http.MethodDelete,
		Path:        "/api/v1/caches/{name}",
		Summary:     "Delete one cache",
		Description: "cleared is false when the cache did not exist or could not be deleted",
		Tags:        []string{"caches"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearAllOp() huma.Operation {
	return huma.Operation{
		OperationID: "clear-all-caches",
		Method:      http.MethodDelete,
		Path:        "/api/v1/caches",
		Summary:     "Delete every cache",
		Tags:        []string{"caches"},
		Middlewares: h.middleware,
	}
}
