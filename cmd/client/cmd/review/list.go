package review

import (
	"resepnusantara/internal/app/client"
	"resepnusantara/internal/domain/review"

	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list <type> <id>",
	Short: "Отзывы о рецепте",
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
		if _, err := s.Catalog.Get(ref); err != nil {
			return err
		}

		res := s.Reviews.Reviews(cmd.Context(), ref)
		out := reviewsResult{
			Status:  res.Status.String(),
			Reviews: res.Value,
			Summary: review.Summarize(res.Value),
		}

		return s.Out.Emit(out, func() {
			s.Out.Status(res.Status)
			if out.Summary.Count == 0 {
				s.Out.Line("Отзывов пока нет")
				return
			}
			s.Out.Title("Отзывы: %d, средняя оценка %.1f", out.Summary.Count, out.Summary.Average)
			for _, r := range out.Reviews {
				s.Out.Line("%s %s", client.Stars(r.Rating), r.UserName)
				s.Out.Line("  %s", r.Comment)
				s.Out.Muted("  %s", r.Timestamp.Local().Format("2006-01-02 15:04"))
			}
		})
	},
}
