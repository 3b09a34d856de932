package favorite

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:   "check <type> <id>",
	Short: "Проверить, есть ли рецепт в избранном",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ref, err := client.ParseRefArgs(args)
		if err != nil {
			return err
		}

		fav := s.Favorites.IsFavorite(cmd.Context(), ref)
		return s.Out.Emit(map[string]bool{"favorite": fav}, func() {
			if fav {
				s.Out.Line("♥ %s в избранном", ref.Key())
			} else {
				s.Out.Line("%s не в избранном", ref.Key())
			}
		})
	},
}
