package service

import (
	"errors"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

var ErrBattleNotJoinable = errors.New("battle is not waiting for an opponent")

// JoinRepo adds join-code lookup to the battle repo surface.
type JoinRepo interface {
	BattleRepo
	FindBattleByJoinCode(code string) (*game.Battle, error)
}

// CreateOpenBattle persists a one-sided battle in the waiting state. PvP
// lobbies gather the second tamer later via JoinBattle; the battle only
// enters in_progress once both teams exist.
func CreateOpenBattle(repo BattleRepo, cfg *config.LoadedConfig, kind game.BattleKind, joinCode string, team TeamRequest) (*game.Battle, error) {
	p, err := buildParticipant(repo, cfg, team)
	if err != nil {
		return nil, err
	}
	b := &game.Battle{
		Kind:         kind,
		JoinCode:     joinCode,
		State:        game.BattleWaiting,
		Participants: []game.Participant{*p},
		Settings:     cfg.DefaultSettings,
		Message:      "Waiting for an opponent.",
	}
	if err := repo.CreateBattle(b); err != nil {
		return nil, err
	}
	return b, nil
}

// JoinBattle fills the open slot of a waiting battle and starts it.
func JoinBattle(repo JoinRepo, cfg *config.LoadedConfig, joinCode string, team TeamRequest) (*game.Battle, error) {
	b, err := repo.FindBattleByJoinCode(joinCode)
	if err != nil || b == nil {
		return nil, ErrBattleNotFound
	}
	if b.State != game.BattleWaiting || len(b.Participants) != 1 {
		return nil, ErrBattleNotJoinable
	}

	p, err := buildParticipant(repo, cfg, team)
	if err != nil {
		return nil, err
	}
	b.Participants = append(b.Participants, *p)
	if err := b.Start(); err != nil {
		return nil, err
	}
	b.Message = "The battle has begun!"
	b.InitialOrder = engine.EncodeTurnOrder(engine.ComputeTurnOrder(b))
	b.ActionDeadline = time.Now().Add(cfg.ActionTimeout)

	if err := repo.UpdateBattle(b); err != nil {
		return nil, err
	}
	return b, nil
}
