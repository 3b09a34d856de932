package favorite

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:     "remove <type> <id>",
	Aliases: []string{"rm"},
	Short:   "Убрать рецепт из избранного",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ref, err := client.ParseRefArgs(args)
		if err != nil {
			return err
		}

		res, err := s.Favorites.Remove(cmd.Context(), ref)
		if err != nil {
			return err
		}

		return s.Out.Emit(listResult{Status: res.Status.String(), Items: res.Value}, func() {
			s.Out.Status(res.Status)
			if !res.Failed() {
				s.Out.Success("%s убран из избранного (осталось %d)", ref.Key(), len(res.Value))
			}
		})
	},
}
