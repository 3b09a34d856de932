package profile

import "resepnusantara/internal/domain/profile"

type getInput struct{}

type updateInput struct {
	Body profile.Patch
}

type avatarInput struct {
	RawBody []byte `contentType:"application/octet-stream" doc:"Image bytes, at most 2 MiB"`
}

type profileResponse struct {
	Status  string          `json:"status" example:"ok" doc:"Storage status of the profile document"`
	Profile profile.Profile `json:"profile"`
}

type profileOutput struct {
	Body profileResponse
}
