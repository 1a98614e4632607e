package main

import (
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"
	"github.com/ayish1998/UpPaws-sub002/internal/service"
	"github.com/ayish1998/UpPaws-sub002/internal/storage"
)

// startTimeoutScanner forfeits battles whose action deadline has passed.
func startTimeoutScanner(repo storage.Repository, cfg *config.LoadedConfig) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			battles, err := repo.FindTimedOutBattles(time.Now())
			if err != nil {
				logging.Error("timeout scanner failed", err, nil)
				continue
			}
			for i := range battles {
				// Re-read through the repository so records and results are
				// loaded before the forfeit mutates the aggregate.
				b, err := repo.GetBattleByID(battles[i].ID)
				if err != nil {
					continue
				}
				_ = service.HandleTimedOutBattle(repo, cfg, b)
			}
		}
	}()
}
