package review

import (
	"resepnusantara/internal/domain/review"

	"github.com/spf13/cobra"
)

var ReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Отзывы о рецептах",
}

type reviewsResult struct {
	Status  string          `json:"status"`
	Reviews []review.Review `json:"reviews"`
	Summary review.Summary  `json:"summary"`
}
