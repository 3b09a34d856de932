package cache

import "resepnusantara/internal/domain/cache"

type listInput struct{}

type listOutput struct {
	Body struct {
		Caches []cache.Info `json:"caches"`
	}
}

type nameInput struct {
	Name string `path:"name" minLength:"1" pattern:"^[^/]+$" example:"recipe-images-cache"`
}

type inspectOutput struct {
	Body *cache.Detail
}

type clearOutput struct {
	Body struct {
		Cleared bool `json:"cleared"`
	}
}
