package cache

import (
	"context"

	"resepnusantara/internal/utils/logger"

	"golang.org/x/exp/slog"
)

const sizeDecimals = 2

type Info struct {
	Name          string `json:"name"`
	Entries       int    `json:"entries"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"sizeFormatted"`
}

type EntryInfo struct {
	URL           string `json:"url"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"sizeFormatted"`
}

type Detail struct {
	Name               string      `json:"name"`
	TotalEntries       int         `json:"totalEntries"`
	TotalSize          int64       `json:"totalSize"`
	TotalSizeFormatted string      `json:"totalSizeFormatted"`
	Entries            []EntryInfo `json:"entries"`
}

// Inspector - фасад для просмотра и очистки кешей. Сбои логируются
// и превращаются в пустой результат, nil или false.
type Inspector struct {
	caches *Storage
	log    *slog.Logger
}

func NewInspector(caches *Storage, log *slog.Logger) *Inspector {
	return &Inspector{
		caches: caches,
		log:    log.With("component", "cache_inspector"),
	}
}

// List возвращает сводку по всем кешам
func (i *Inspector) List(ctx context.Context) []Info {
	names, err := i.caches.Names(ctx)
	if err != nil {
		i.log.Error("error getting cache info", logger.Err(err))
		return []Info{}
	}

	infos := make([]Info, 0, len(names))
	for _, name := range names {
		entries, err := i.caches.Entries(ctx, name)
		if err != nil {
			i.log.Error("error getting cache info", "cache", name, logger.Err(err))
			return []Info{}
		}

		var total int64
		for _, e := range entries {
			total += e.Size()
		}
		infos = append(infos, Info{
			Name:          name,
			Entries:       len(entries),
			Size:          total,
			SizeFormatted: FormatBytes(total, sizeDecimals),
		})
	}
	return infos
}

// Inspect возвращает записи одного кеша; для неизвестного имени - пустую сводку, nil при сбое
func (i *Inspector) Inspect(ctx context.Context, name string) *Detail {
	entries, err := i.caches.Entries(ctx, name)
	if err != nil {
		i.log.Error("error getting specific cache info", "cache", name, logger.Err(err))
		return nil
	}

	d := &Detail{
		Name:    name,
		Entries: make([]EntryInfo, 0, len(entries)),
	}
	for _, e := range entries {
		d.TotalSize += e.Size()
		d.Entries = append(d.Entries, EntryInfo{
			URL:           e.URL,
			Size:          e.Size(),
			SizeFormatted: FormatBytes(e.Size(), sizeDecimals),
		})
	}
	d.TotalEntries = len(entries)
	d.TotalSizeFormatted = FormatBytes(d.TotalSize, sizeDecimals)
	return d
}

// Clear удаляет кеш; true, если кеш существовал
func (i *Inspector) Clear(ctx context.Context, name string) bool {
	deleted, err := i.caches.Delete(ctx, name)
	if err != nil {
		i.log.Error("error clearing cache", "cache", name, logger.Err(err))
		return false
	}
	return deleted
}

// ClearAll удаляет все кеши
func (i *Inspector) ClearAll(ctx context.Context) bool {
	names, err := i.caches.Names(ctx)
	if err != nil {
		i.log.Error("error clearing all caches", logger.Err(err))
		return false
	}

	for _, name := range names {
		if _, err := i.caches.Delete(ctx, name); err != nil {
			i.log.Error("error clearing all caches", "cache", name, logger.Err(err))
			return false
		}
	}
	return true
}
