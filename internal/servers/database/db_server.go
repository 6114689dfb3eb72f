package database

import (
	"fmt"
	"log"
	"microblog/configs"
	"microblog/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the application database and migrates the schema. The
// returned handle owns the connection pool and is injected into the
// repositories at construction.
func Connect(config *configs.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(Dsn(config)), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Dsn(config *configs.Config) string {
	return DsnFor(config, config.Viper.GetString("APP_DB_NAME"))
}

// DsnFor builds a DSN for an arbitrary database on the configured server.
// The setup utility uses it to reach the maintenance database.
func DsnFor(config *configs.Config, dbName string) string {
	v := config.Viper
	return fmt.Sprintf(
		"host=%v user=%v password=%v dbname=%v port=%v sslmode=%v",
		v.GetString("APP_DB_HOST"),
		v.GetString("APP_DB_USERNAME"),
		v.GetString("APP_DB_PASSWORD"),
		dbName,
		v.GetInt("APP_DB_PORT"),
		v.GetString("APP_DB_SSLMODE"),
	)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Message{}); err != nil {
		return err
	}
	log.Println("Database migrated successfully")
	return nil
}
