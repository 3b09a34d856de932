package image

type fetchInput struct {
	URL string `query:"url" required:"true" format:"uri" doc:"Image URL, served cache-first"`
}

type fetchOutput struct {
	ContentType string `header:"Content-Type"`
	ETag        string `header:"ETag"`
	Cache       string `header:"X-Cache" doc:"hit when served from the local cache, miss otherwise"`
	Body        []byte
}
