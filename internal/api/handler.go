package api

import (
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/storage"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo          storage.Repository
	cfg           *config.LoadedConfig
	actionTimeout time.Duration
}

// NewBattleHandler creates a BattleHandler with the given repository,
// loaded config and per-action timeout.
func NewBattleHandler(repo storage.Repository, cfg *config.LoadedConfig, actionTimeout time.Duration) *BattleHandler {
	return &BattleHandler{repo: repo, cfg: cfg, actionTimeout: actionTimeout}
}
