package service

import (
	"errors"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/ai"
	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"
)

var (
	ErrBattleNotFound         = errors.New("battle not found")
	ErrBattleNotInProgress    = errors.New("battle is not in progress")
	ErrParticipantNotInBattle = errors.New("participant not in battle")
)

// SubmitAction resolves one participant action against a persisted battle
// and, while the battle continues, immediately answers for an AI opponent.
// The request path skips AI thinking delays: pacing belongs to the
// orchestrator loop, not to HTTP handlers, and delays never change output.
// Returns the updated battle and the ordered outcomes of this exchange.
func SubmitAction(repo BattleRepo, cfg *config.LoadedConfig, battleID uint, tamerName string, act game.Action, actionTimeout time.Duration) (*game.Battle, []*engine.Outcome, error) {
	b, err := repo.GetBattleByID(battleID)
	if err != nil || b == nil {
		return nil, nil, ErrBattleNotFound
	}
	if b.State != game.BattleInProgress {
		return nil, nil, ErrBattleNotInProgress
	}

	idx := -1
	for i := range b.Participants {
		if b.Participants[i].Name == tamerName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, ErrParticipantNotInBattle
	}
	act.Participant = idx

	eng := engine.New(b, engine.WithTypeChart(cfg.Chart))
	out, err := eng.Resolve(act)
	if err != nil {
		return nil, nil, err
	}
	outcomes := []*engine.Outcome{out}

	// AI reply for the opposing side, validated like any other action.
	if b.State == game.BattleInProgress {
		opp := b.OpposingTeam(idx)
		if p := &b.Participants[opp]; p.IsAI {
			brain := ai.New(b, opp, b.Kind, ai.Difficulty(p.AIDifficulty))
			brain.UpdateState(b)
			aiAct, aiErr := brain.BestAction()
			if aiErr != nil {
				logging.Warn("ai produced no action", logging.Fields{
					constants.LogFieldBattleID: b.ID, "error": aiErr.Error(),
				})
			} else if aiOut, resolveErr := eng.Resolve(aiAct); resolveErr != nil {
				// The AI contract promises structurally valid actions; a
				// rejected one is worth surfacing even though the human's
				// action already resolved.
				logging.Warn("ai action rejected", logging.Fields{
					constants.LogFieldBattleID: b.ID, "error": resolveErr.Error(),
				})
			} else {
				outcomes = append(outcomes, aiOut)
			}
		}
	}

	if b.State == game.BattleInProgress {
		b.ActionDeadline = time.Now().Add(actionTimeout)
	} else {
		b.ActionDeadline = time.Time{}
	}

	if err := repo.UpdateBattle(b); err != nil {
		return nil, outcomes, err
	}
	return b, outcomes, nil
}
