package main

import (
	"context"
	"fmt"
	"os"

	"intake_dossier/internal/domain/entities"
	"intake_dossier/internal/usecase/records"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// seedFile is the fixture format of `dossierctl seed`.
type seedFile struct {
	Content []entities.ContentEntry `yaml:"content"`
	Theme   *entities.Theme         `yaml:"theme"`
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load content entries and a theme from YAML",
		Long: `Upserts content entries by key and the theme by name. Re-running a seed
updates the records in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var seed seedFile
			if err := yaml.Unmarshal(raw, &seed); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			e := records.New(store)
			ctx := cmd.Context()

			for _, entry := range seed.Content {
				if entry.Key == "" {
					return fmt.Errorf("content entry without key")
				}
				if err := upsertBy(ctx, e.Content, "key", entry.Key, entry); err != nil {
					return err
				}
			}
			if seed.Theme != nil {
				if seed.Theme.Name == "" {
					return fmt.Errorf("theme without name")
				}
				if err := upsertBy(ctx, e.Theme, "name", seed.Theme.Name, *seed.Theme); err != nil {
					return err
				}
			}

			a.logger.Info("[cli][seed] done", zap.Int("content", len(seed.Content)), zap.Bool("theme", seed.Theme != nil))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d content entries, theme=%t\n", len(seed.Content), seed.Theme != nil)
			return nil
		},
	}
}

func upsertBy(ctx context.Context, c *records.Collection, field, value string, v any) error {
	rec, err := records.Encode(v)
	if err != nil {
		return err
	}
	delete(rec, entities.FieldID)

	found, err := c.Filter(ctx, map[string]any{field: value}, "", 1)
	if err != nil {
		return err
	}
	if len(found) > 0 {
		_, err = c.Update(ctx, found[0].ID(), rec)
		return err
	}
	_, err = c.Create(ctx, rec)
	return err
}
