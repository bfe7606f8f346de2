package main

import (
	"flag"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/narwhalmedia/tracker/internal/catalog/repository"
	"github.com/narwhalmedia/tracker/pkg/config"
	"github.com/narwhalmedia/tracker/pkg/database"
	"github.com/narwhalmedia/tracker/pkg/logger"
)

func main() {
	var (
		driver = flag.String("driver", "", "Database driver (sqlite, postgres); overrides config")
		dsn    = flag.String("dsn", "", "Database DSN; overrides config")
		status = flag.Bool("status", false, "Show migration status")
		dryRun = flag.Bool("dry-run", false, "Show pending migrations without applying them")
	)
	flag.Parse()

	cfg := config.MustLoadServiceConfig("catalog", config.GetDefaultCatalogConfig())
	if *driver != "" {
		cfg.Database.Driver = *driver
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}

	if cfg.Database.Driver == config.DriverBolt {
		fmt.Println("The bolt store keeps no schema; nothing to migrate.")
		return
	}

	db, err := database.NewGormDB(cfg.Database.ToDatabaseConfig(), logger.NewNoop())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	switch {
	case *status:
		showMigrationStatus(db)
	case *dryRun:
		showPendingMigrations(db)
	default:
		runMigrations(db)
	}
}

// runMigrations applies all pending migrations
func runMigrations(db *gorm.DB) {
	fmt.Println("Running database migrations...")

	if err := database.RunMigrations(db, logger.New(), repository.Migrations()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	fmt.Println("Migrations completed successfully!")
}

// showMigrationStatus displays the current migration status
func showMigrationStatus(db *gorm.DB) {
	var applied []database.Migration
	if db.Migrator().HasTable(&database.Migration{}) {
		if err := db.Order("applied_at DESC").Find(&applied).Error; err != nil {
			log.Fatalf("Failed to get migrations: %v", err)
		}
	}

	if len(applied) == 0 {
		fmt.Println("No migrations have been applied yet.")
	} else {
		fmt.Println("Applied migrations:")
		fmt.Println("==================")
		for _, m := range applied {
			fmt.Printf("%s | %s | Applied at: %s\n", m.Version, m.Name, m.AppliedAt.Format("2006-01-02 15:04:05"))
		}
	}

	pending, err := database.GetPendingMigrations(db, repository.Migrations()...)
	if err != nil {
		log.Fatalf("Failed to get pending migrations: %v", err)
	}

	if len(pending) > 0 {
		fmt.Println("\nPending migrations:")
		fmt.Println("==================")
		for _, m := range pending {
			fmt.Printf("%s | %s\n", m.Version, m.Name)
		}
	} else {
		fmt.Println("\nAll migrations are up to date!")
	}
}

// showPendingMigrations displays migrations that would be applied
func showPendingMigrations(db *gorm.DB) {
	pending, err := database.GetPendingMigrations(db, repository.Migrations()...)
	if err != nil {
		log.Fatalf("Failed to get pending migrations: %v", err)
	}

	if len(pending) == 0 {
		fmt.Println("No pending migrations.")
		return
	}

	fmt.Println("Pending migrations that would be applied:")
	fmt.Println("========================================")
	for _, m := range pending {
		fmt.Printf("%s | %s\n", m.Version, m.Name)
	}
}
