package main

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/container"
	"github.com/saulo-duarte/skillverse-api/internal/schema"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := container.Bootstrap(cmd.Context()); err != nil {
			return err
		}
		if err := schema.Migrate(config.DB); err != nil {
			return err
		}
		config.Log.Info("Schema is up to date")
		return nil
	},
}
