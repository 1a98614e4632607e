package main

import (
	"os"

	"github.com/ayish1998/UpPaws-sub002/internal/api"
	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Path may be provided via UPPAWS_CONFIG or defaults to
	// ./uppaws_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath, cfg)

	handler := api.NewBattleHandler(repo, cfg, cfg.ActionTimeout)

	// Background scanner: forfeit battles whose action deadline has passed.
	startTimeoutScanner(repo, cfg)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteSpecies, handler.ListSpecies)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		apiRoutes.POST(constants.RouteBattles, handler.CreateBattle)
		apiRoutes.POST(constants.RouteBattlesJoin, handler.JoinBattle)
		apiRoutes.GET(constants.RouteBattleByCode, handler.GetBattle)
		apiRoutes.POST(constants.RouteBattleAction, handler.SubmitAction)
		apiRoutes.GET(constants.RouteBattleLog, handler.GetBattleLog)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
