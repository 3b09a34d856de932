package favorite

import (
	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/favorite"
)

type listInput struct {
	Type string `query:"type" doc:"Category filter: makanan or minuman"`
}

type addInput struct {
	Body struct {
		Type string `json:"type" enum:"makanan,minuman"`
		ID   int    `json:"id" minimum:"1"`
	}
}

type refInput struct {
	apiutil.RefParams
}

type listResponse struct {
	Status string              `json:"status" example:"ok" doc:"Storage status of the favorites document"`
	Items  []favorite.Favorite `json:"items"`
}

type listOutput struct {
	Body listResponse
}

type checkOutput struct {
	Body struct {
		Favorite bool `json:"favorite"`
	}
}
