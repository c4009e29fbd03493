package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase"
	"intake_dossier/internal/usecase/interfaces"
	"intake_dossier/internal/usecase/records"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		retries int
		backoff time.Duration
	)
	cmd := &cobra.Command{
		Use:   "generate <submission-id>",
		Short: "Analyze a submission and write its dossier",
		Long: `Runs the analysis capability over a submission and stores the result as its
single dossier, overwriting any previous one.

Store outages and lost create races are retried up to --retries times with a
linear backoff. Other failures are returned immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			analyzer, err := a.openAnalyzer(ctx)
			if err != nil {
				return err
			}
			uc := usecase.NewDossierUseCase(records.New(store), analyzer, a.logger)

			rec, err := generateWithRetry(ctx, uc, args[0], retries, backoff, a.logger)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
	cmd.Flags().IntVar(&retries, "retries", 0, "retries on store unavailability or create conflicts")
	cmd.Flags().DurationVar(&backoff, "backoff", 2*time.Second, "base delay, multiplied by the attempt number")
	return cmd
}

func generateWithRetry(ctx context.Context, uc usecase.IDossierUseCase, id string, retries int, backoff time.Duration, logger *zap.Logger) (entities.Record, error) {
	for attempt := 0; ; attempt++ {
		rec, err := uc.Generate(ctx, id)
		if err == nil {
			return rec, nil
		}
		if !retryable(err) || attempt >= retries {
			return nil, err
		}
		wait := backoff * time.Duration(attempt+1)
		logger.Warn("[cli][generate] retrying",
			zap.String("submission_id", id),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("generate %s: %w", id, ctx.Err())
		case <-time.After(wait):
		}
	}
}

func retryable(err error) bool {
	return errors.Is(err, interfaces.ErrStoreUnavailable) || errors.Is(err, usecase.ErrDossierConflict)
}
