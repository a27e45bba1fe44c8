package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/config"
	"github.com/shashiranjanraj/tienda/database/seeders"
	"github.com/shashiranjanraj/tienda/internal/server"
	"github.com/shashiranjanraj/tienda/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return database.Connect()
}

// tienda db:sync: create or update the schema, same step serve performs
// at startup.
var dbSyncCmd = &cobra.Command{
	Use:   "db:sync",
	Short: "Synchronize the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Synchronizing schema...")
		return database.Sync(db, server.Models()...)
	},
}

// tienda db:seed
var dbSeedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		if err := database.Sync(db, server.Models()...); err != nil {
			return err
		}
		fmt.Println("Running seeders...")
		return seeders.RunAll(db)
	},
}
