package main

import (
	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/database"
	"github.com/scribearc/scribearc/internal/env"
	"github.com/scribearc/scribearc/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.ServicePackage{},
		&model.Project{},
		&model.ProjectHistory{},
		&model.ReferenceSequence{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	logger.Info("Migration complete")
}
