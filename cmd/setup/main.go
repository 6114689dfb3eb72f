// One-shot schema bootstrap. Creates the application database when asked
// and migrates the messages table, then exits.
package main

import (
	"flag"
	"fmt"
	"log"
	"microblog/configs"
	"microblog/internal/servers/database"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	createDB := flag.Bool("create-db", false, "create the application database if it does not exist")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *createDB {
		if err := createDatabase(cfg); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to set up schema: %v", err)
	}

	log.Println("Database setup complete")
}

// createDatabase connects to the maintenance database and creates the
// application database when it is absent. CREATE DATABASE has no IF NOT
// EXISTS in Postgres, so pg_database is checked first.
func createDatabase(cfg *configs.Config) error {
	admin, err := gorm.Open(postgres.Open(database.DsnFor(cfg, "postgres")), &gorm.Config{})
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := admin.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	name := cfg.Viper.GetString("APP_DB_NAME")

	var count int64
	if err := admin.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", name).Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return admin.Exec(fmt.Sprintf("CREATE DATABASE %q", name)).Error
}
