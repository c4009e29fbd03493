package routes

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	_ "intake_dossier/docs" // swag generated
	"intake_dossier/internal/adapter/http/handlers"
	"intake_dossier/internal/adapter/persistence/repository"
	"intake_dossier/internal/infrastructure/analysis"
	"intake_dossier/internal/usecase"
	"intake_dossier/internal/usecase/cache"
	"intake_dossier/internal/usecase/records"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	DefaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

// Dependencies are the use cases served by the router.
type Dependencies struct {
	Submissions usecase.ISubmissionUseCase
	Dossiers    usecase.IDossierUseCase
	Content     usecase.IContentUseCase
	Logger      *zap.Logger
}

// Run wires the use cases from the environment and serves until ctx is
// canceled or the listener fails.
func Run(ctx context.Context, logger *zap.Logger) error {
	deps, err := BuildDependencies(ctx, logger)
	if err != nil {
		return err
	}
	if err := deps.Content.Warm(ctx); err != nil {
		logger.Warn("[http][routes] cache warmup failed, serving cold", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + getenvDefault("PORT", DefaultPort),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][routes] listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("[http][routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// BuildDependencies selects the record store and analysis provider from the
// environment and assembles the use cases on top of them.
func BuildDependencies(ctx context.Context, logger *zap.Logger) (Dependencies, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := repository.NewRecordStoreFromEnv(ctx, logger)
	if err != nil {
		return Dependencies{}, err
	}
	analyzer, err := analysis.NewAnalyzerFromEnv(ctx, logger)
	if err != nil {
		return Dependencies{}, err
	}
	contentTTL, err := durationFromEnv("CONTENT_CACHE_TTL", cache.DefaultContentTTL)
	if err != nil {
		return Dependencies{}, err
	}
	themeTTL, err := durationFromEnv("THEME_CACHE_TTL", 0)
	if err != nil {
		return Dependencies{}, err
	}

	e := records.New(store)
	return Dependencies{
		Submissions: usecase.NewSubmissionUseCase(e, logger),
		Dossiers:    usecase.NewDossierUseCase(e, analyzer, logger),
		Content: usecase.NewContentUseCase(
			cache.NewContentCache(e.Content, contentTTL, logger),
			cache.NewThemeCache(e.Theme, themeTTL, logger),
			logger,
		),
		Logger: logger,
	}, nil
}

func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	submissionHandler := handlers.NewSubmissionHandler(deps.Submissions, logger)
	dossierHandler := handlers.NewDossierHandler(deps.Dossiers, logger)
	contentHandler := handlers.NewContentHandler(deps.Content)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, submissionHandler, dossierHandler)
	addContentRoutes(v1, contentHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][routes] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(os.Getenv("CORS_ALLOWED_ORIGINS"))))
}

func corsConfig(origins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 || (len(allowed) == 1 && allowed[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowed
	return cfg
}

func durationFromEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
