package main

import (
	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"
	"github.com/ayish1998/UpPaws-sub002/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid uppaws configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a uppaws_config.json with 'species_list' and 'move_list' arrays plus an optional 'type_chart' and server settings",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, cfg.Species)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db, cfg)
}
