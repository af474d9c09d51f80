package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/familymap-api/internal/api"
	"github.com/vietanh2810/familymap-api/internal/config"
	"github.com/vietanh2810/familymap-api/internal/db"
	"github.com/vietanh2810/familymap-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	var database *gorm.DB
	dbURL := os.Getenv("DATABASE_URL")
	switch {
	case dbURL != "":
		database, err = db.OpenPostgresWithURL(dbURL)
	case conf.Database.Driver == "sqlite":
		database, err = db.OpenSQLite(conf.Database.SQLitePath)
	default:
		database, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = db.Migrate(database); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	s := api.NewServer(conf, database)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
