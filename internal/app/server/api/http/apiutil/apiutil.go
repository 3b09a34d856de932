// Package apiutil - общие параметры и преобразование ошибок для HTTP-обработчиков
package apiutil

import (
	"errors"
	"sort"

	"resepnusantara/internal/domain/recipe"

	"github.com/danielgtaylor/huma/v2"
)

// RefParams - путь /{type}/{id}
type RefParams struct {
	Type string `path:"type" enum:"makanan,minuman" doc:"Recipe category"`
	ID   int    `path:"id" minimum:"1" doc:"Recipe id, unique within its category"`
}

func (p RefParams) Ref() recipe.Ref {
	return recipe.Ref{ID: p.ID, Type: recipe.Type(p.Type)}
}

// Validation превращает поля с ошибками в ответ 422
func Validation(err error, fields map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make([]error, 0, len(names))
	for _, name := range names {
		details = append(details, &huma.ErrorDetail{
			Message:  fields[name],
			Location: "body." + name,
		})
	}
	return huma.Error422UnprocessableEntity(err.Error(), details...)
}

// RecipeError переводит ошибки каталога в HTTP-статусы
func RecipeError(err error) error {
	switch {
	case errors.Is(err, recipe.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, recipe.ErrInvalidType),
		errors.Is(err, recipe.ErrInvalidID),
		errors.Is(err, recipe.ErrInvalidRef):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
