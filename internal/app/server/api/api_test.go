package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"resepnusantara/internal/app"
	"resepnusantara/internal/config"
	"resepnusantara/internal/infrastructure/storage/memory"
	"resepnusantara/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	cfg := &config.Config{
		Env: config.EnvLocal,
		Keys: config.Keys{
			Favorites: "resep-nusantara-favorites",
			Reviews:   "resep-nusantara-reviews",
			Profile:   "resep-nusantara-profile",
		},
		Cache: config.Cache{Prefix: "cache/"},
	}
	a := app.NewWithMedium(cfg, memory.New(0), logger.Discard())

	_, api := humatest.New(t, huma.DefaultConfig(title, version))
	Register(api, a, logger.Discard())
	return api
}

func decode(t *testing.T, body *bytes.Buffer, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/v1/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Status  string `json:"status"`
		Storage string `json:"storage"`
	}
	decode(t, resp.Body, &body)
	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "ok", body.Storage)
}

func TestRecipes(t *testing.T) {
	api := newTestAPI(t)

	t.Run("paginated list", func(t *testing.T) {
		resp := api.Get("/api/v1/recipes?type=makanan&page=2")
		require.Equal(t, http.StatusOK, resp.Code)

		var page struct {
			Items      []map[string]any `json:"items"`
			Page       int              `json:"page"`
			TotalPages int              `json:"total_pages"`
			Total      int              `json:"total"`
		}
		decode(t, resp.Body, &page)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 8, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Items, 2)
	})

	t.Run("unknown type", func(t *testing.T) {
		resp := api.Get("/api/v1/recipes?type=kue")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("missing recipe", func(t *testing.T) {
		resp := api.Get("/api/v1/recipes/makanan/999")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestFavoritesFlow(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/api/v1/favorites", map[string]any{"type": "makanan", "id": 1})
	require.Equal(t, http.StatusOK, resp.Code)
	resp = api.Post("/api/v1/favorites", map[string]any{"type": "makanan", "id": 1})
	require.Equal(t, http.StatusOK, resp.Code)

	var list struct {
		Status string           `json:"status"`
		Items  []map[string]any `json:"items"`
	}
	decode(t, resp.Body, &list)
	assert.Equal(t, "ok", list.Status)
	assert.Len(t, list.Items, 1)

	var check struct {
		Favorite bool `json:"favorite"`
	}
	decode(t, api.Get("/api/v1/favorites/makanan/1").Body, &check)
	assert.True(t, check.Favorite)
	decode(t, api.Get("/api/v1/favorites/minuman/1").Body, &check)
	assert.False(t, check.Favorite)

	var detail struct {
		IsFavorite bool `json:"isFavorite"`
	}
	decode(t, api.Get("/api/v1/recipes/makanan/1").Body, &detail)
	assert.True(t, detail.IsFavorite)

	resp = api.Delete("/api/v1/favorites/makanan/1")
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, api.Get("/api/v1/favorites/makanan/1").Body, &check)
	assert.False(t, check.Favorite)

	resp = api.Post("/api/v1/favorites", map[string]any{"type": "makanan", "id": 999})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestReviewsFlow(t *testing.T) {
	api := newTestAPI(t)

	for _, rating := range []int{3, 4, 5} {
		resp := api.Post("/api/v1/recipes/minuman/2/reviews", map[string]any{
			"rating":  rating,
			"comment": "Enak",
		})
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	}

	var body struct {
		Reviews []struct {
			ID       string `json:"id"`
			UserName string `json:"userName"`
		} `json:"reviews"`
		Summary struct {
			Count   int     `json:"count"`
			Average float64 `json:"average"`
		} `json:"summary"`
	}
	decode(t, api.Get("/api/v1/recipes/minuman/2/reviews").Body, &body)
	assert.Equal(t, 3, body.Summary.Count)
	assert.Equal(t, 4.0, body.Summary.Average)
	assert.Equal(t, "Anonymous", body.Reviews[0].UserName)
	assert.NotEqual(t, body.Reviews[0].ID, body.Reviews[1].ID)

	t.Run("blank comment", func(t *testing.T) {
		resp := api.Post("/api/v1/recipes/minuman/2/reviews", map[string]any{
			"rating":  4,
			"comment": "   ",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "body.comment")
	})

	t.Run("rating out of range", func(t *testing.T) {
		resp := api.Post("/api/v1/recipes/minuman/2/reviews", map[string]any{
			"rating":  6,
			"comment": "Terlalu manis",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("other recipe is empty", func(t *testing.T) {
		decode(t, api.Get("/api/v1/recipes/makanan/2/reviews").Body, &body)
		assert.Zero(t, body.Summary.Count)
		assert.Empty(t, body.Reviews)
	})
}

func TestProfileFlow(t *testing.T) {
	api := newTestAPI(t)

	var body struct {
		Status  string         `json:"status"`
		Profile map[string]any `json:"profile"`
	}
	decode(t, api.Get("/api/v1/profile").Body, &body)
	assert.Equal(t, "absent", body.Status)
	assert.Equal(t, "Budi Santoso", body.Profile["username"])

	resp := api.Patch("/api/v1/profile", map[string]any{"username": "Siti"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	decode(t, resp.Body, &body)
	assert.Equal(t, "Siti", body.Profile["username"])
	assert.Equal(t, "Jakarta, Indonesia", body.Profile["location"])

	resp = api.Patch("/api/v1/profile", map[string]any{"email": "bukan-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	resp = api.Patch("/api/v1/profile", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = api.Put("/api/v1/profile/avatar", "Content-Type: application/octet-stream", bytes.NewReader(pngHeader))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	decode(t, resp.Body, &body)
	assert.Contains(t, body.Profile["avatar"], "data:image/png;base64,")

	resp = api.Put("/api/v1/profile/avatar", "Content-Type: application/octet-stream", bytes.NewReader([]byte("plain text")))
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.Code)
}

func TestCaches(t *testing.T) {
	api := newTestAPI(t)

	var list struct {
		Caches []map[string]any `json:"caches"`
	}
	decode(t, api.Get("/api/v1/caches").Body, &list)
	assert.Empty(t, list.Caches)

	var detail struct {
		Name               string `json:"name"`
		TotalEntries       int    `json:"totalEntries"`
		TotalSizeFormatted string `json:"totalSizeFormatted"`
	}
	decode(t, api.Get("/api/v1/caches/recipe-images-cache").Body, &detail)
	assert.Equal(t, "recipe-images-cache", detail.Name)
	assert.Equal(t, "0 Bytes", detail.TotalSizeFormatted)

	var cleared struct {
		Cleared bool `json:"cleared"`
	}
	decode(t, api.Delete("/api/v1/caches/recipe-images-cache").Body, &cleared)
	assert.False(t, cleared.Cleared)
	decode(t, api.Delete("/api/v1/caches").Body, &cleared)
	assert.True(t, cleared.Cleared)
}

func TestImages_RejectsNonImageURL(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/v1/images?url=https://example.test/index.html")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestImages_RejectsInternalTargets(t *testing.T) {
	api := newTestAPI(t)

	urls := []string{
		"https://10.0.0.1/admin?x=.png",
		"https://metadata.internal/latest?.jpg",
		"https://127.0.0.1/a.png",
		"https://169.254.169.254/latest.jpg",
		"https://metadata.internal/latest.jpg",
	}
	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			resp := api.Get("/api/v1/images?url=" + url.QueryEscape(u))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}
