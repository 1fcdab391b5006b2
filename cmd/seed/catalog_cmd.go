package main

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/dailysync/sdk/modules/catalog/seed"
	"github.com/dailysync/sdk/pkg/composables"
	"github.com/dailysync/sdk/pkg/configuration"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Seed the built-in archetype catalog (idempotent, upsert by code)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			pool, err := pgxpool.New(cmd.Context(), conf.Database.Opts)
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			return seed.CreateBuiltInCatalog(ctx)
		},
	}
}
