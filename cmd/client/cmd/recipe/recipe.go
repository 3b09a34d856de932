package recipe

import "github.com/spf13/cobra"

var RecipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Каталог рецептов",
	Long: `Просмотр каталога рецептов: makanan (блюда) и minuman (напитки).

Рецепт задается категорией и номером: "makanan 3" или "makanan_3".`,
}
