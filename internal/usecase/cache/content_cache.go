package cache

import (
	"context"
	"sync"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/records"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultContentTTL = 5 * time.Minute

const contentFlightKey = "content"

// ContentCache is a read-through cache of active Content entries keyed by
// content key. A ttl <= 0 disables expiry.
type ContentCache struct {
	content *records.Collection
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
	group   singleflight.Group

	mu       sync.RWMutex
	entries  map[string]entities.ContentEntry
	loadedAt time.Time
	// gen is bumped by Invalidate; a load started under an older gen does
	// not store its result.
	gen uint64
}

func NewContentCache(content *records.Collection, ttl time.Duration, logger *zap.Logger) *ContentCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentCache{content: content, ttl: ttl, now: time.Now, logger: logger}
}

// WithClock replaces the time source used for freshness checks.
func (c *ContentCache) WithClock(now func() time.Time) *ContentCache {
	c.now = now
	return c
}

// Entries returns the cached key→entry mapping, reloading it when unset or
// stale. A failed reload keeps serving the previous mapping. The returned map
// is shared and must not be modified.
func (c *ContentCache) Entries(ctx context.Context) (map[string]entities.ContentEntry, error) {
	c.mu.RLock()
	entries, loadedAt := c.entries, c.loadedAt
	c.mu.RUnlock()

	if entries != nil && fresh(loadedAt, c.now(), c.ttl) {
		return entries, nil
	}

	loaded, err := c.reload(ctx)
	if err != nil {
		if entries != nil {
			c.logger.Warn("[content][cache] reload failed, serving stale entries", zap.Error(err))
			return entries, nil
		}
		return nil, err
	}
	return loaded, nil
}

// Lookup returns the template for key in lang with vars substituted. Missing
// keys, missing languages and load failures all degrade to returning key.
func (c *ContentCache) Lookup(ctx context.Context, key, lang string, vars map[string]string) string {
	entries, err := c.Entries(ctx)
	if err != nil {
		c.logger.Warn("[content][cache] lookup without content", zap.String("key", key), zap.String("lang", lang), zap.Error(err))
		return key
	}
	entry, ok := entries[key]
	if !ok {
		c.logger.Warn("[content][cache] missing key", zap.String("key", key), zap.String("lang", lang))
		return key
	}
	tmpl, ok := entry.Translations[lang]
	if !ok {
		c.logger.Warn("[content][cache] missing language", zap.String("key", key), zap.String("lang", lang))
		return key
	}
	return Interpolate(tmpl, vars)
}

// Invalidate drops the cached mapping; the next read reloads it.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.loadedAt = time.Time{}
	c.gen++
	c.mu.Unlock()
	c.group.Forget(contentFlightKey)
}

func (c *ContentCache) reload(ctx context.Context) (map[string]entities.ContentEntry, error) {
	ch := c.group.DoChan(contentFlightKey, func() (any, error) {
		return c.load(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]entities.ContentEntry), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *ContentCache) load(ctx context.Context) (map[string]entities.ContentEntry, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	rows, err := c.content.Filter(ctx, map[string]any{entities.FieldIsActive: true}, "", 0)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]entities.ContentEntry, len(rows))
	for _, row := range rows {
		entry, err := records.Decode[entities.ContentEntry](row)
		if err != nil || entry.Key == "" {
			c.logger.Warn("[content][cache] skipping malformed entry", zap.String("id", row.ID()), zap.Error(err))
			continue
		}
		entries[entry.Key] = entry
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		c.logger.Debug("[content][cache] discarding load superseded by invalidate")
		return entries, nil
	}
	c.entries = entries
	c.loadedAt = c.now()
	c.mu.Unlock()

	c.logger.Debug("[content][cache] loaded", zap.Int("entries", len(entries)))
	return entries, nil
}

func fresh(loadedAt, now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return true
	}
	return now.Sub(loadedAt) < ttl
}
