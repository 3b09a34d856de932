package favorite

import (
	"time"

	"resepnusantara/internal/domain/recipe"
)

// Favorite - снимок рецепта на момент добавления в избранное
type Favorite struct {
	recipe.Recipe
	AddedAt time.Time `json:"added_at"`
}

func keyOf(f Favorite) recipe.Ref {
	return f.Ref()
}
