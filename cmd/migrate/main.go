package main

import (
	"fmt"
	"log"

	"cryptofolio/internal/db"
	"cryptofolio/internal/util"

	"github.com/spf13/cobra"
)

var migrationsPath string

func databaseURL() (string, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return "", fmt.Errorf("failed to load secrets: %w", err)
	}
	return secrets.Db.ToDatabaseURL(), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "migrations", "directory holding migration files")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			return db.RunMigrations(url, migrationsPath)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			return db.RollbackMigrations(url, migrationsPath)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			version, dirty, err := db.MigrationVersion(url, migrationsPath)
			if err != nil {
				return err
			}
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
