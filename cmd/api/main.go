package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "intake_dossier/docs"
	"intake_dossier/internal/adapter/http/routes"
	"intake_dossier/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Intake Dossier API
// @version         1.0
// @description     Customer intake wizard, analysis dossiers and branded content backed by a pluggable record store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger := logging.MustNew("intake-api")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, logger); err != nil {
		logger.Error("[api][main] server stopped", zap.Error(err))
		os.Exit(1)
	}
}
