// Package logos keeps a local copy of company logos so rendered pages do not
// hot-link third-party image hosts.
package logos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"jobboard/internal/metrics"
	"jobboard/internal/store"
)

var (
	ErrBadURL         = errors.New("logo url must be absolute http(s)")
	ErrHostNotAllowed = errors.New("logo host not allowed")
	ErrNotImage       = errors.New("logo response is not an image")
	ErrTooLarge       = errors.New("logo exceeds size limit")
)

type Options struct {
	RequestsPerSecond float64
	Burst             int
	MaxBytes          int
	WarmParallelism   int
	// Lowercase host names; empty allows any host.
	AllowHosts []string
	Client     *http.Client
}

type Cache struct {
	db      *sql.DB
	opts    Options
	hc      *http.Client
	limiter *hostLimiter
	log     *zap.Logger
	allow   map[string]bool

	sf   singleflight.Group
	mu   sync.RWMutex
	keys map[string]string // source url -> key
}

func New(db *sql.DB, opts Options, logger *zap.Logger) *Cache {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 512 * 1024
	}
	if opts.WarmParallelism <= 0 {
		opts.WarmParallelism = 1
	}
	hc := opts.Client
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	allow := map[string]bool{}
	for _, h := range opts.AllowHosts {
		allow[strings.ToLower(h)] = true
	}
	return &Cache{
		db:      db,
		opts:    opts,
		hc:      hc,
		limiter: newHostLimiter(opts.RequestsPerSecond, opts.Burst),
		log:     logger.Named("logos"),
		allow:   allow,
		keys:    map[string]string{},
	}
}

// Load primes the in-memory index from logos cached by earlier runs.
func (c *Cache) Load(ctx context.Context) error {
	keys, err := store.ListLogoKeys(ctx, c.db)
	if err != nil {
		return fmt.Errorf("load logo keys: %w", err)
	}
	c.mu.Lock()
	for src, key := range keys {
		c.keys[src] = key
	}
	c.mu.Unlock()
	return nil
}

// Src is the image source to render for raw: the local copy when cached,
// raw otherwise. A nil Cache always returns raw.
func (c *Cache) Src(raw string) string {
	if c == nil {
		return raw
	}
	c.mu.RLock()
	key, ok := c.keys[raw]
	c.mu.RUnlock()
	if !ok {
		return raw
	}
	return "/logo/" + key
}

// Ensure fetches raw into the cache unless it is already there and returns its key.
func (c *Cache) Ensure(ctx context.Context, raw string) (string, error) {
	c.mu.RLock()
	key, ok := c.keys[raw]
	c.mu.RUnlock()
	if ok {
		metrics.LogoFetchTotal.WithLabelValues("cached").Inc()
		return key, nil
	}

	fetchURL, err := c.check(raw)
	if err != nil {
		metrics.LogoFetchTotal.WithLabelValues("rejected").Inc()
		return "", err
	}

	key = store.LogoKeyFromURL(raw)
	_, err, _ = c.sf.Do(key, func() (any, error) {
		has, err := store.HasLogo(ctx, c.db, key)
		if err != nil {
			return nil, err
		}
		if !has {
			if err := c.fetch(ctx, raw, fetchURL, key); err != nil {
				return nil, err
			}
			metrics.LogoFetchTotal.WithLabelValues("fetched").Inc()
		} else {
			metrics.LogoFetchTotal.WithLabelValues("cached").Inc()
		}
		c.mu.Lock()
		c.keys[raw] = key
		c.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		metrics.LogoFetchTotal.WithLabelValues("failed").Inc()
		return "", err
	}
	return key, nil
}

// Warm caches every url with bounded parallelism. Individual failures are
// logged and skipped; only context cancellation is returned.
func (c *Cache) Warm(ctx context.Context, urls []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.WarmParallelism)

	for _, u := range urls {
		u := u
		g.Go(func() error {
			if _, err := c.Ensure(gctx, u); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				c.log.Warn("logo not cached", zap.String("url", u), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	c.log.Info("logo warm-up done", zap.Int("urls", len(urls)))
	return nil
}

// check validates raw and returns the URL to request. Fragments are never
// sent over HTTP, so they are dropped.
func (c *Cache) check(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if i := strings.IndexByte(u, '#'); i >= 0 {
		u = u[:i]
	}
	pu, err := url.Parse(u)
	if err != nil || (pu.Scheme != "http" && pu.Scheme != "https") || pu.Host == "" {
		return "", ErrBadURL
	}
	if len(c.allow) > 0 && !c.allow[strings.ToLower(pu.Hostname())] {
		return "", fmt.Errorf("%w: %s", ErrHostNotAllowed, pu.Hostname())
	}
	return u, nil
}

func (c *Cache) fetch(ctx context.Context, raw, fetchURL, key string) error {
	if err := c.limiter.waitURL(ctx, fetchURL); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "jobboard/1.0 (+logo-cache)")
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch logo: upstream status %s", resp.Status)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.opts.MaxBytes)+1))
	if err != nil {
		return fmt.Errorf("read logo: %w", err)
	}
	if len(b) == 0 {
		return ErrNotImage
	}
	if len(b) > c.opts.MaxBytes {
		return ErrTooLarge
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		// sniff as fallback
		ct = http.DetectContentType(b)
		if !strings.HasPrefix(ct, "image/") {
			return ErrNotImage
		}
	}

	c.log.Debug("logo cached", zap.String("url", raw), zap.Int("bytes", len(b)))
	return store.PutLogo(ctx, c.db, store.Logo{
		Key:         key,
		SourceURL:   raw,
		ContentType: ct,
		Bytes:       b,
	})
}
