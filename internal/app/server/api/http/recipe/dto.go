package recipe

import (
	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/domain/review"
)

type listInput struct {
	Type    string `query:"type" doc:"Category filter: makanan or minuman; empty lists both"`
	Q       string `query:"q" doc:"Case-insensitive name search"`
	Page    int    `query:"page" default:"1" minimum:"1"`
	PerPage int    `query:"per_page" default:"6" minimum:"1" maximum:"60"`
}

type listOutput struct {
	Body recipe.Page[recipe.Recipe]
}

type getInput struct {
	apiutil.RefParams
}

type detail struct {
	recipe.Recipe
	IsFavorite bool           `json:"isFavorite"`
	Reviews    review.Summary `json:"reviews"`
}

type getOutput struct {
	Body detail
}
