package review

import (
	"sort"

	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/recipe"
	"resepnusantara/internal/domain/review"

	"github.com/spf13/cobra"
)

var SummaryCmd = &cobra.Command{
	Use:   "summary [<type> <id>]",
	Short: "Число отзывов и средняя оценка",
	Long:  `Без аргументов выводит сводку по всем рецептам, у которых есть отзывы.`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) > 0 {
			ref, err := client.ParseRefArgs(args)
			if err != nil {
				return err
			}
			sum := s.Reviews.Summary(cmd.Context(), ref)
			return s.Out.Emit(sum, func() {
				s.Out.Line("%s %.1f (%d отзывов)", client.Stars(int(sum.Average+0.5)), sum.Average, sum.Count)
			})
		}

		all := s.Reviews.Summaries(cmd.Context())
		return s.Out.Emit(all, func() {
			if len(all) == 0 {
				s.Out.Line("Отзывов пока нет")
				return
			}
			printAll(s, all)
		})
	},
}

func printAll(s *client.Session, all map[string]review.Summary) {
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := k
		if ref, err := recipe.ParseRef(k); err == nil {
			if rec, err := s.Catalog.Get(ref); err == nil {
				name = rec.Name
			}
		}
		sum := all[k]
		s.Out.Line("%-12s %s %.1f (%d)  %s", k, client.Stars(int(sum.Average+0.5)), sum.Average, sum.Count, name)
	}
}
