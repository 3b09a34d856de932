package favorite

import (
	"strings"

	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/recipe"

	"github.com/spf13/cobra"
)

var listType string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список избранного",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := s.Favorites.GetAll(cmd.Context())
		items := res.Value
		if strings.TrimSpace(listType) != "" {
			t, err := recipe.ParseType(listType)
			if err != nil {
				return err
			}
			items = s.Favorites.ByType(cmd.Context(), t)
		}

		return s.Out.Emit(listResult{Status: res.Status.String(), Items: items}, func() {
			s.Out.Status(res.Status)
			if len(items) == 0 {
				s.Out.Line("Избранное пусто")
				return
			}
			s.Out.Title("Избранное (%d)", len(items))
			for _, f := range items {
				s.Out.Line("♥ %-12s %s", f.Ref().Key(), f.Name)
				s.Out.Muted("  добавлено %s", f.AddedAt.Local().Format("2006-01-02 15:04"))
			}
		})
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listType, "type", "t", "", "категория: makanan или minuman")
}
