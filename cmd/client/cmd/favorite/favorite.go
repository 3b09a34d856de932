package favorite

import (
	"resepnusantara/internal/domain/favorite"

	"github.com/spf13/cobra"
)

var FavoriteCmd = &cobra.Command{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Избранные рецепты",
}

type listResult struct {
	Status string              `json:"status"`
	Items  []favorite.Favorite `json:"items"`
}
