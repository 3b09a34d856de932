package review

import (
	"time"

	"resepnusantara/internal/app/server/api/http/apiutil"
	"resepnusantara/internal/domain/review"
)

type listInput struct {
	apiutil.RefParams
}

type addInput struct {
	apiutil.RefParams
	Body struct {
		UserName  string     `json:"userName,omitempty" maxLength:"64" doc:"Empty name is stored as Anonymous"`
		Rating    int        `json:"rating" minimum:"1" maximum:"5"`
		Comment   string     `json:"comment" maxLength:"1000"`
		Timestamp *time.Time `json:"timestamp,omitempty" doc:"Defaults to the time the review is stored"`
	}
}

type reviewsResponse struct {
	Status  string          `json:"status" example:"ok" doc:"Storage status of the reviews document"`
	Reviews []review.Review `json:"reviews"`
	Summary review.Summary  `json:"summary"`
}

type reviewsOutput struct {
	Body reviewsResponse
}
