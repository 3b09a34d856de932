package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"resepnusantara/internal/utils/logger"

	"golang.org/x/exp/slog"
)

// MaxBodyBytes - ответы крупнее не кешируются и не отдаются
const MaxBodyBytes = 8 << 20

var (
	ErrNoRoute    = errors.New("url does not match any cache route")
	ErrBadStatus  = errors.New("unexpected upstream status")
	ErrBodyTooBig = errors.New("upstream response is too large")
)

// Source сообщает, откуда получен ответ
type Source string

const (
	SourceCache   Source = "cache"
	SourceNetwork Source = "network"
)

type Fetched struct {
	Entry  Entry
	Cache  string
	Source Source
}

// Fetcher получает ресурсы по сети через именованные кеши согласно маршрутам
type Fetcher struct {
	caches    *Storage
	routes    []Route
	client    *http.Client
	checkHost func(u *url.URL) error
	log       *slog.Logger
}

// NewFetcher копирует client и проверяет каждый редирект тем же маршрутом
// и CheckHost. Без client используется NewClient.
func NewFetcher(caches *Storage, routes []Route, client *http.Client, log *slog.Logger) *Fetcher {
	if client == nil {
		client = NewClient(0)
	}
	f := &Fetcher{
		caches:    caches,
		routes:    routes,
		checkHost: CheckHost,
		log:       log.With("component", "cache_fetcher"),
	}

	c := *client
	c.CheckRedirect = f.checkRedirect
	f.client = &c
	return f
}

// Route возвращает первый маршрут, подходящий под url
func (f *Fetcher) Route(url string) (Route, bool) {
	for _, r := range f.routes {
		if r.Pattern.MatchString(url) {
			return r, true
		}
	}
	return Route{}, false
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Fetched, error) {
	route, ok := f.Route(rawURL)
	if !ok {
		return Fetched{}, fmt.Errorf("%w: %s", ErrNoRoute, rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Fetched{}, fmt.Errorf("%w: %s", ErrNoRoute, rawURL)
	}
	if err := f.checkHost(u); err != nil {
		return Fetched{}, err
	}

	switch route.Strategy {
	case NetworkFirst:
		return f.networkFirst(ctx, route, rawURL)
	default:
		return f.cacheFirst(ctx, route, rawURL)
	}
}

// checkRedirect пускает редирект только на URL того же кеша с допустимым хостом
func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d redirects", ErrRedirect, maxRedirects)
	}

	target := req.URL.String()
	from, _ := f.Route(via[0].URL.String())
	to, ok := f.Route(target)
	if !ok || to.Cache != from.Cache {
		return fmt.Errorf("%w: %s", ErrRedirect, target)
	}
	if err := f.checkHost(req.URL); err != nil {
		return fmt.Errorf("%w: %w", ErrRedirect, err)
	}
	return nil
}

func (f *Fetcher) cacheFirst(ctx context.Context, route Route, url string) (Fetched, error) {
	name := route.Cache
	e, hit, err := f.caches.Match(ctx, name, url)
	if err != nil {
		f.log.Warn("cache lookup failed", "cache", name, "url", url, logger.Err(err))
	}
	if hit {
		return Fetched{Entry: e, Cache: name, Source: SourceCache}, nil
	}

	e, err = f.download(ctx, route, url)
	if err != nil {
		return Fetched{}, err
	}
	f.store(ctx, name, e)
	return Fetched{Entry: e, Cache: name, Source: SourceNetwork}, nil
}

func (f *Fetcher) networkFirst(ctx context.Context, route Route, url string) (Fetched, error) {
	name := route.Cache
	e, netErr := f.download(ctx, route, url)
	if netErr == nil {
		f.store(ctx, name, e)
		return Fetched{Entry: e, Cache: name, Source: SourceNetwork}, nil
	}

	cached, hit, err := f.caches.Match(ctx, name, url)
	if err != nil {
		f.log.Warn("cache lookup failed", "cache", name, "url", url, logger.Err(err))
	}
	if hit {
		f.log.Debug("network failed, serving from cache", "cache", name, "url", url, logger.Err(netErr))
		return Fetched{Entry: cached, Cache: name, Source: SourceCache}, nil
	}
	return Fetched{}, netErr
}

func (f *Fetcher) store(ctx context.Context, name string, e Entry) {
	if err := f.caches.Put(ctx, name, e); err != nil {
		f.log.Warn("failed to cache response", "cache", name, "url", e.URL, logger.Err(err))
	}
}

func (f *Fetcher) download(ctx context.Context, route Route, url string) (Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Entry{}, fmt.Errorf("%w: %s returned %d", ErrBadStatus, url, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if route.ContentType != "" && !strings.HasPrefix(strings.ToLower(contentType), route.ContentType) {
		return Entry{}, fmt.Errorf("%w: %s returned %q", ErrContentType, url, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return Entry{}, fmt.Errorf("read %s: %w", url, err)
	}
	if len(body) > MaxBodyBytes {
		return Entry{}, fmt.Errorf("%w: %s", ErrBodyTooBig, url)
	}

	return Entry{
		URL:         url,
		ContentType: contentType,
		Body:        body,
		ETag:        Digest(body),
	}, nil
}
