package profile

import (
	"net/http"

	"resepnusantara/internal/domain/profile"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Get the user profile",
		Description: "Returns the default profile until one has been saved",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/api/v1/profile",
		Summary:     "Update profile fields",
		Description: "Fields present in the body replace stored values; social is replaced as a whole",
		Tags:        []string{"profile"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) avatarOp() huma.Operation {
	return huma.Operation{
		OperationID:  "upload-avatar",
		Method:       http.MethodPut,
		Path:         "/api/v1/profile/avatar",
		Summary:      "Upload an avatar image",
		Tags:         []string{"profile"},
		MaxBodyBytes: profile.MaxAvatarBytes + 1,
		Middlewares:  h.middleware,
	}
}
