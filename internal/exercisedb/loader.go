package exercisedb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// CacheKey is the cache slot holding the raw dataset payload.
const CacheKey = "exercisedb"

// Cache stores the raw dataset between runs.
type Cache interface {
	ReadCache(key string) (data []byte, fetched time.Time, err error)
	WriteCache(key string, data []byte, fetched time.Time) error
}

// Loader fetches the dataset once and builds a Table from it.
type Loader struct {
	Client    *http.Client
	Cache     Cache
	Now       func() time.Time
	URL       string
	ImageBase string
	TTL       time.Duration
}

// NewLoader returns a loader for url with the given request timeout. cache
// may be nil.
func NewLoader(url, imageBase string, timeout, ttl time.Duration, cache Cache) *Loader {
	return &Loader{
		Client:    &http.Client{Timeout: timeout},
		Cache:     cache,
		Now:       time.Now,
		URL:       url,
		ImageBase: imageBase,
		TTL:       ttl,
	}
}

// Load returns the dataset table. It never fails: a fresh cache is used when
// present, otherwise the dataset is fetched. If fetching fails the stale cache
// is used, and if there is none the table is empty. Concurrent calls are not
// coordinated; each performs its own fetch.
func (l *Loader) Load(ctx context.Context) *Table {
	cached, fetched, cacheErr := l.readCache()

	if cacheErr == nil && len(cached) > 0 && l.Now().Sub(fetched) < l.TTL {
		t, err := Decode(cached, l.ImageBase)
		if err == nil {
			slog.DebugContext(ctx, "exercise db loaded from cache",
				slog.Int("entries", t.Len()),
				slog.Time("fetched", fetched),
			)

			return t
		}

		slog.WarnContext(ctx, "discarding unreadable exercise db cache",
			slog.Any("error", err),
		)

		cached = nil
	}

	t, err := l.fetch(ctx)
	if err == nil {
		return t
	}

	slog.WarnContext(ctx, "exercise db load failed", slog.Any("error", err))

	if len(cached) > 0 {
		if t, err := Decode(cached, l.ImageBase); err == nil {
			slog.InfoContext(ctx, "using stale exercise db cache",
				slog.Time("fetched", fetched),
			)

			return t
		}
	}

	return NewTable()
}

func (l *Loader) fetch(ctx context.Context) (*Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, http.NoBody)
	if err != nil {
		return nil, errFetch.Wrap(err)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errFetch.Wrap(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errFetch.Wrap(fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errFetch.Wrap(err)
	}

	t, err := Decode(data, l.ImageBase)
	if err != nil {
		return nil, err
	}

	if l.Cache != nil {
		if err := l.Cache.WriteCache(CacheKey, data, l.Now()); err != nil {
			slog.WarnContext(ctx, "unable to cache exercise db", slog.Any("error", err))
		}
	}

	slog.InfoContext(ctx, "exercise db fetched",
		slog.String("url", l.URL),
		slog.Int("entries", t.Len()),
	)

	return t, nil
}

func (l *Loader) readCache() ([]byte, time.Time, error) {
	if l.Cache == nil {
		return nil, time.Time{}, errNoCache
	}

	return l.Cache.ReadCache(CacheKey)
}
