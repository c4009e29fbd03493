package main

import (
	"fmt"
	"strings"

	"intake_dossier/internal/usecase/cache"
	"intake_dossier/internal/usecase/records"

	"github.com/spf13/cobra"
)

func newLookupCmd(a *app) *cobra.Command {
	var (
		lang string
		vars []string
	)
	cmd := &cobra.Command{
		Use:   "lookup <key>",
		Short: "Print the translation of a content key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseVars(vars)
			if err != nil {
				return err
			}
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			c := cache.NewContentCache(records.New(store).Content, cache.DefaultContentTTL, a.logger)
			fmt.Fprintln(cmd.OutOrStdout(), c.Lookup(cmd.Context(), args[0], lang, values))
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "language code")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "interpolation variable as name=value, repeatable")
	return cmd
}

func parseVars(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid --var %q, want name=value", p)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}
