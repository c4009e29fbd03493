package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/records"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrNoActiveTheme = errors.New("no active theme")

const themeFlightKey = "theme"

// ThemeCache holds the single active Theme. With ttl <= 0 the first loaded
// theme is served for the life of the process unless Invalidate is called.
type ThemeCache struct {
	themes *records.Collection
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
	group  singleflight.Group

	mu       sync.RWMutex
	theme    *entities.Theme
	loadedAt time.Time
	gen      uint64
}

func NewThemeCache(themes *records.Collection, ttl time.Duration, logger *zap.Logger) *ThemeCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThemeCache{themes: themes, ttl: ttl, now: time.Now, logger: logger}
}

func (c *ThemeCache) WithClock(now func() time.Time) *ThemeCache {
	c.now = now
	return c
}

func (c *ThemeCache) Theme(ctx context.Context) (entities.Theme, error) {
	c.mu.RLock()
	theme, loadedAt := c.theme, c.loadedAt
	c.mu.RUnlock()

	if theme != nil && fresh(loadedAt, c.now(), c.ttl) {
		return *theme, nil
	}

	ch := c.group.DoChan(themeFlightKey, func() (any, error) {
		return c.load(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err == nil {
			return res.Val.(entities.Theme), nil
		}
		if theme != nil {
			c.logger.Warn("[theme][cache] reload failed, serving stale theme", zap.Error(res.Err))
			return *theme, nil
		}
		return entities.Theme{}, res.Err
	case <-ctx.Done():
		return entities.Theme{}, ctx.Err()
	}
}

// Variables returns the presentation variables of the active theme, one flat
// key per color and typography entry.
func (c *ThemeCache) Variables(ctx context.Context) (map[string]string, error) {
	theme, err := c.Theme(ctx)
	if err != nil {
		return nil, err
	}
	return ThemeVariables(theme), nil
}

func (c *ThemeCache) Invalidate() {
	c.mu.Lock()
	c.theme = nil
	c.loadedAt = time.Time{}
	c.gen++
	c.mu.Unlock()
	c.group.Forget(themeFlightKey)
}

func (c *ThemeCache) load(ctx context.Context) (entities.Theme, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	rows, err := c.themes.Filter(ctx, map[string]any{entities.FieldIsActive: true}, "-"+entities.FieldUpdatedDate, 1)
	if err != nil {
		return entities.Theme{}, err
	}
	if len(rows) == 0 {
		return entities.Theme{}, ErrNoActiveTheme
	}
	theme, err := records.Decode[entities.Theme](rows[0])
	if err != nil {
		return entities.Theme{}, fmt.Errorf("decode theme %s: %w", rows[0].ID(), err)
	}

	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		c.logger.Debug("[theme][cache] discarding load superseded by invalidate")
		return theme, nil
	}
	c.theme = &theme
	c.loadedAt = c.now()
	c.mu.Unlock()

	c.logger.Debug("[theme][cache] loaded", zap.String("theme_id", theme.ID), zap.String("name", theme.Name))
	return theme, nil
}

// ThemeVariables flattens colors to --color-<path> and typography to
// --font-<path>; nested keys are joined with "-".
func ThemeVariables(theme entities.Theme) map[string]string {
	out := map[string]string{}
	flatten(out, "--color", theme.Colors)
	flatten(out, "--font", theme.Typography)
	return out
}

func flatten(out map[string]string, prefix string, m map[string]any) {
	for k, val := range m {
		name := prefix + "-" + strings.ReplaceAll(k, "_", "-")
		switch v := val.(type) {
		case map[string]any:
			flatten(out, name, v)
		case nil:
		default:
			out[name] = fmt.Sprint(v)
		}
	}
}
