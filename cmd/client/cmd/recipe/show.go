package recipe

import (
	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/domain/review"

	"github.com/spf13/cobra"
)

type detail struct {
	recipe.Recipe
	IsFavorite bool           `json:"isFavorite"`
	Reviews    review.Summary `json:"reviews"`
}

var ShowCmd = &cobra.Command{
	Use:     "show <type> <id>",
	Short:   "Показать рецепт",
	Example: "  resep recipe show makanan 1\n  resep recipe show minuman_2",
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

		d := detail{
			Recipe:     rec,
			IsFavorite: s.Favorites.IsFavorite(cmd.Context(), ref),
			Reviews:    s.Reviews.Summary(cmd.Context(), ref),
		}

		return s.Out.Emit(d, func() {
			s.Out.Title("%s", d.Name)
			s.Out.Muted("%s · %s", d.Type.DisplayName(), ref.Key())
			if d.IsFavorite {
				s.Out.Line("♥ в избранном")
			}
			if d.Reviews.Count > 0 {
				s.Out.Line("%s %.1f (%d отзывов)", client.Stars(int(d.Reviews.Average+0.5)), d.Reviews.Average, d.Reviews.Count)
			}

			s.Out.Line("")
			s.Out.Title("Bahan")
			for _, ing := range d.Ingredients {
				s.Out.Line("  • %s", ing)
			}

			s.Out.Line("")
			s.Out.Title("Langkah")
			for i, step := range d.Steps {
				s.Out.Line("  %d. %s", i+1, step)
			}
		})
	},
}
