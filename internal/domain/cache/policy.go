package cache

import (
	"regexp"
	"time"
)

const (
	ImagesCache = "recipe-images-cache"
	DataCache   = "recipe-data-cache"
)

// Strategy - порядок обращения к сети и кешу
type Strategy string

const (
	// CacheFirst отдает запись из кеша, в сеть идет только при промахе
	CacheFirst Strategy = "cache_first"
	// NetworkFirst идет в сеть, кеш используется при сетевой ошибке
	NetworkFirst Strategy = "network_first"
)

// Policy ограничивает именованный кеш. Нулевые значения снимают ограничение.
type Policy struct {
	MaxEntries int
	MaxAge     time.Duration
}

// Route связывает шаблон URL с кешем и стратегией.
// ContentType - обязательный префикс Content-Type ответа, пустой - любой.
type Route struct {
	Pattern     *regexp.Regexp
	Cache       string
	Strategy    Strategy
	ContentType string
}

func DefaultPolicies() map[string]Policy {
	return map[string]Policy{
		ImagesCache: {MaxEntries: 60, MaxAge: 30 * 24 * time.Hour},
		DataCache:   {MaxEntries: 50, MaxAge: 24 * time.Hour},
	}
}

func DefaultRoutes() []Route {
	return []Route{
		{
			// Расширение проверяется по пути, query и fragment не учитываются
			Pattern:     regexp.MustCompile(`(?i)^https://(images\.unsplash\.com/[^?#]*|[^/?#@]+/[^?#]*\.(jpe?g|png|webp))(\?[^#]*)?$`),
			Cache:       ImagesCache,
			Strategy:    CacheFirst,
			ContentType: "image/",
		},
		{
			Pattern:  regexp.MustCompile(`(?i)^https?://.*/api/.*`),
			Cache:    DataCache,
			Strategy: NetworkFirst,
		},
	}
}
