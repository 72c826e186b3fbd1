package cache

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"traffic-sender/internal/core/domain"
	"traffic-sender/internal/observability"
)

// URLSource is the storage view the cache reloads from.
type URLSource interface {
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.URL, error)
	ListServable(ctx context.Context, campaignID int64) ([]domain.URL, error)
}

type entry struct {
	urls     []domain.URL
	loadedAt time.Time
}

// ClickLimitCache implements port.ClickInventory. Entries are reloaded
// after ttl; concurrent reloads of a campaign are collapsed into one
// storage read. A ttl <= 0 disables caching.
type ClickLimitCache struct {
	mu      sync.RWMutex
	items   map[int64]entry
	version map[int64]uint64
	group   singleflight.Group

	src    URLSource
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
	intn   func(n int) int
}

// Option customises a ClickLimitCache.
type Option func(*ClickLimitCache)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *ClickLimitCache) { c.now = now }
}

// WithRand overrides the source of the weighted pick. intn must return a
// value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(c *ClickLimitCache) { c.intn = intn }
}

// NewClickLimitCache creates a cache over src.
func NewClickLimitCache(src URLSource, ttl time.Duration, logger *slog.Logger, opts ...Option) *ClickLimitCache {
	c := &ClickLimitCache{
		items:   make(map[int64]entry),
		version: make(map[int64]uint64),
		src:     src,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ClickLimitCache) get(campaignID int64) ([]domain.URL, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[campaignID]
	if !ok || c.now().Sub(e.loadedAt) >= c.ttl {
		return nil, false
	}
	return e.urls, true
}

// URLs returns every URL of the campaign. When the reload fails it falls
// back to an uncached read of the servable URLs.
func (c *ClickLimitCache) URLs(ctx context.Context, campaignID int64) ([]domain.URL, error) {
	if urls, ok := c.get(campaignID); ok {
		observability.CacheLookups.WithLabelValues("hit").Inc()
		return urls, nil
	}
	observability.CacheLookups.WithLabelValues("miss").Inc()

	v, err, _ := c.group.Do(strconv.FormatInt(campaignID, 10), func() (any, error) {
		return c.load(ctx, campaignID)
	})
	if err == nil {
		return v.([]domain.URL), nil
	}

	c.logger.Warn("click cache reload failed, reading storage directly",
		slog.Int64("campaign_id", campaignID),
		slog.Any("error", err))
	observability.CacheLookups.WithLabelValues("fallback").Inc()
	return c.src.ListServable(ctx, campaignID)
}

func (c *ClickLimitCache) load(ctx context.Context, campaignID int64) ([]domain.URL, error) {
	c.mu.RLock()
	ver := c.version[campaignID]
	c.mu.RUnlock()

	urls, err := c.src.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.ttl <= 0 {
		return urls, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// An Invalidate during the read makes the result stale.
	if c.version[campaignID] == ver {
		c.items[campaignID] = entry{urls: urls, loadedAt: c.now()}
	}
	return urls, nil
}

// Pick chooses a URL with active status, proportionally to its weight.
func (c *ClickLimitCache) Pick(ctx context.Context, campaignID int64) (domain.URL, error) {
	urls, err := c.URLs(ctx, campaignID)
	if err != nil {
		return domain.URL{}, err
	}
	return PickWeighted(urls, c.intn)
}

// PickWeighted draws one URL whose ActiveStatus is active using cumulative
// weights. intn must return a value in [0, n).
func PickWeighted(urls []domain.URL, intn func(n int) int) (domain.URL, error) {
	total := 0
	for _, u := range urls {
		if u.ActiveStatus() == domain.ActiveStatusActive {
			total += u.EffectiveWeight()
		}
	}
	if total == 0 {
		return domain.URL{}, domain.ErrNoEligibleURL
	}
	r := intn(total)
	for _, u := range urls {
		if u.ActiveStatus() != domain.ActiveStatusActive {
			continue
		}
		r -= u.EffectiveWeight()
		if r < 0 {
			return u, nil
		}
	}
	// unreachable while intn honours its contract
	return domain.URL{}, domain.ErrNoEligibleURL
}

// RemainingClicks sums the remaining clicks over URLs with status active.
func (c *ClickLimitCache) RemainingClicks(ctx context.Context, campaignID int64) (int64, error) {
	urls, err := c.URLs(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	return domain.RemainingClicks(urls), nil
}

// Invalidate drops the entry of a campaign and discards in-flight reloads.
func (c *ClickLimitCache) Invalidate(campaignID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, campaignID)
	c.version[campaignID]++
}
