package cache

import "github.com/spf13/cobra"

var CacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Кеши изображений и данных",
	Long: `Просмотр и очистка локальных кешей:
  recipe-images-cache - изображения рецептов (до 60 записей, 30 дней)
  recipe-data-cache   - ответы API (до 50 записей, 24 часа)`,
}
