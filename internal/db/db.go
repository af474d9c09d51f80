package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vietanh2810/familymap-api/internal/config"
	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v",
		conf.Host, conf.User, conf.Password, conf.DBName, conf.Port, conf.SSLMode,
	)

	return OpenPostgresWithURL(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(url), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return database, nil
}

// OpenSQLite opens a file-backed SQLite database. Tests use it with
// in-memory DSNs so the whole store layer runs without a server.
func OpenSQLite(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return database, nil
}

// Migrate creates the four tables when they do not exist yet. Clear and Load
// later recreate them through dao.ResetSchema inside their own transactions.
func Migrate(database *gorm.DB) error {
	return dao.InitTables(database)
}
