package main

import (
	"fmt"

	"github.com/shenikar/flood_control_system/internal/schema"
	"github.com/spf13/cobra"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the database, apply migrations and seed sample data",
	Long: `Create the database if it does not exist, apply schema migrations and,
unless SEED_SAMPLE_DATA=false, fill empty tables with sample rows.

Running it again is safe: existing tables and rows are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := schema.Provision(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()
		fmt.Fprintln(cmd.OutOrStdout(), "Database is ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}
