package review

import (
	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/review"

	"github.com/spf13/cobra"
)

var (
	addName    string
	addRating  int
	addComment string
)

var AddCmd = &cobra.Command{
	Use:     "add <type> <id>",
	Short:   "Оставить отзыв",
	Example: `  resep review add makanan 1 --rating 5 --comment "Enak sekali" --name Siti`,
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

		res, err := s.Reviews.Add(cmd.Context(), ref, review.Draft{
			UserName: addName,
			Rating:   addRating,
			Comment:  addComment,
		})
		if err != nil {
			return err
		}

		out := reviewsResult{
			Status:  res.Status.String(),
			Reviews: res.Value,
			Summary: review.Summarize(res.Value),
		}
		return s.Out.Emit(out, func() {
			s.Out.Status(res.Status)
			if !res.Failed() {
				s.Out.Success("Отзыв о %q сохранен (%d отзывов, средняя %.1f)", rec.Name, out.Summary.Count, out.Summary.Average)
			}
		})
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addName, "name", "n", "", "имя автора (по умолчанию Anonymous)")
	AddCmd.Flags().IntVarP(&addRating, "rating", "r", 0, "оценка от 1 до 5")
	AddCmd.Flags().StringVarP(&addComment, "comment", "c", "", "текст отзыва")
	_ = AddCmd.MarkFlagRequired("rating")
	_ = AddCmd.MarkFlagRequired("comment")
}
