package usecase

import (
	"context"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/cache"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IContentUseCase is the read surface over the content and theme caches.
type IContentUseCase interface {
	Translate(ctx context.Context, key, lang string, vars map[string]string) string
	InvalidateContent()
	Theme(ctx context.Context) (entities.Theme, error)
	ThemeVariables(ctx context.Context) (map[string]string, error)
	InvalidateTheme()
	Warm(ctx context.Context) error
}

type ContentUseCase struct {
	content *cache.ContentCache
	theme   *cache.ThemeCache
	logger  *zap.Logger
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(content *cache.ContentCache, theme *cache.ThemeCache, logger *zap.Logger) *ContentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentUseCase{content: content, theme: theme, logger: logger}
}

func (u *ContentUseCase) Translate(ctx context.Context, key, lang string, vars map[string]string) string {
	return u.content.Lookup(ctx, key, lang, vars)
}

func (u *ContentUseCase) InvalidateContent() {
	u.content.Invalidate()
	u.logger.Info("[content][usecase] content cache invalidated")
}

func (u *ContentUseCase) Theme(ctx context.Context) (entities.Theme, error) {
	return u.theme.Theme(ctx)
}

func (u *ContentUseCase) ThemeVariables(ctx context.Context) (map[string]string, error) {
	return u.theme.Variables(ctx)
}

func (u *ContentUseCase) InvalidateTheme() {
	u.theme.Invalidate()
	u.logger.Info("[content][usecase] theme cache invalidated")
}

// Warm loads both caches concurrently.
func (u *ContentUseCase) Warm(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := u.content.Entries(gctx)
		return err
	})
	g.Go(func() error {
		_, err := u.theme.Theme(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Warn("[content][usecase] warm failed", zap.Error(err))
		return err
	}
	return nil
}
