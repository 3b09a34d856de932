package recipe

import (
	"strings"

	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/recipe"

	"github.com/spf13/cobra"
)

var (
	listType  string
	listQuery string
	listPage  int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список рецептов",
	Long:  `Список рецептов по 6 на страницу с поиском по названию.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		types := recipe.Types
		if strings.TrimSpace(listType) != "" {
			t, err := recipe.ParseType(listType)
			if err != nil {
				return err
			}
			types = []recipe.Type{t}
		}

		found := make([]recipe.Recipe, 0)
		for _, t := range types {
			found = append(found, s.Catalog.Search(t, listQuery)...)
		}
		page := recipe.Paginate(found, listPage, recipe.ItemsPerPage)

		return s.Out.Emit(page, func() {
			if page.Total == 0 {
				s.Out.Line("Рецепты не найдены")
				return
			}
			s.Out.Title("Рецепты (страница %d из %d, всего %d)", page.Page, page.TotalPages, page.Total)
			for _, r := range page.Items {
				mark := " "
				if s.Favorites.IsFavorite(cmd.Context(), r.Ref()) {
					mark = "♥"
				}
				s.Out.Line("%s %-12s %s", mark, r.Ref().Key(), r.Name)
			}
		})
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listType, "type", "t", "", "категория: makanan или minuman")
	ListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "поиск по названию")
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "номер страницы")
}
