package favorite

import (
	"resepnusantara/internal/app/client"

	"github.com/spf13/cobra"
)

var AddCmd = &cobra.Command{
	Use:     "add <type> <id>",
	Short:   "Добавить рецепт в избранное",
	Example: "  resep favorite add makanan 1",
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
		rec, err := s.Catalog.Get(ref)
		if err != nil {
			return err
		}

		res, err := s.Favorites.Add(cmd.Context(), rec)
		if err != nil {
			return err
		}

		return s.Out.Emit(listResult{Status: res.Status.String(), Items: res.Value}, func() {
			s.Out.Status(res.Status)
			if !res.Failed() {
				s.Out.Success("%s в избранном (всего %d)", rec.Name, len(res.Value))
			}
		})
	},
}
