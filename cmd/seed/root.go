package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Migration and seeding tools for the directory database",
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newDemoCmd())
	return cmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
