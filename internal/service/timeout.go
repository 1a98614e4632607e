package service

import (
	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"
)

// HandleTimedOutBattle forfeits a battle whose action deadline passed.
// Turn time limits ride in the battle settings but the engine never
// enforces them; enforcement lives here, in the caller. The idle side is
// the human participant the battle has been waiting on — AI never idles.
func HandleTimedOutBattle(repo BattleRepo, cfg *config.LoadedConfig, b *game.Battle) error {
	if b.State != game.BattleInProgress {
		return nil
	}

	idle := -1
	for i := range b.Participants {
		if !b.Participants[i].IsAI {
			idle = i
			break
		}
	}
	if idle < 0 {
		// All-AI battles have no one to wait for; nothing to enforce.
		return nil
	}

	eng := engine.New(b, engine.WithTypeChart(cfg.Chart))
	if _, err := eng.Resolve(game.Action{Type: game.ActionForfeit, Participant: idle}); err != nil {
		logging.Error("timeout forfeit failed", err, logging.Fields{constants.LogFieldBattleID: b.ID})
		return err
	}
	b.Message = "Battle forfeited: the turn time limit expired."
	logging.Info("battle forfeited on timeout", logging.Fields{constants.LogFieldBattleID: b.ID, constants.LogFieldParticipant: idle})
	return repo.UpdateBattle(b)
}
