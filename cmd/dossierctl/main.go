// Command dossierctl is the operator CLI: it triggers dossier generation,
// seeds content and themes, and checks translations against the live store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"intake_dossier/internal/adapter/persistence/repository"
	"intake_dossier/internal/infrastructure/analysis"
	"intake_dossier/internal/infrastructure/logging"
	"intake_dossier/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the commands need from the environment; tests swap the
// openers for in-memory ones.
type app struct {
	logger       *zap.Logger
	openStore    func(ctx context.Context) (interfaces.IRecordStore, error)
	openAnalyzer func(ctx context.Context) (interfaces.IAnalysisCapability, error)
}

func newEnvApp(logger *zap.Logger) *app {
	return &app{
		logger: logger,
		openStore: func(ctx context.Context) (interfaces.IRecordStore, error) {
			return repository.NewRecordStoreFromEnv(ctx, logger)
		},
		openAnalyzer: func(ctx context.Context) (interfaces.IAnalysisCapability, error) {
			return analysis.NewAnalyzerFromEnv(ctx, logger)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dossierctl",
		Short:         "Operate the intake dossier service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(a), newSeedCmd(a), newLookupCmd(a))
	return root
}

func main() {
	logger := logging.MustNew("dossierctl")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newEnvApp(logger)).ExecuteContext(ctx); err != nil {
		logger.Error("[cli][main] command failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}
