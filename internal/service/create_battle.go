package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/keys"
)

var (
	ErrUnknownSpecies   = errors.New("unknown species")
	ErrUnknownMove      = errors.New("unknown move")
	ErrMoveNotLearnable = errors.New("species cannot learn that move")
)

// BattleRepo is the narrow persistence surface the battle services need.
// storage.Repository satisfies it; tests use in-memory mocks.
type BattleRepo interface {
	GetSpeciesByName(name string) (*game.Species, error)
	CreateBattle(b *game.Battle) error
	GetBattleByID(id uint) (*game.Battle, error)
	UpdateBattle(b *game.Battle) error
}

// AnimalRequest selects one catalog species for a team slot.
type AnimalRequest struct {
	Species  string   `json:"species"`
	Nickname string   `json:"nickname"`
	Level    int      `json:"level"`
	Moves    []string `json:"moves"`
}

// TeamRequest describes one side of a new battle.
type TeamRequest struct {
	TamerName    string          `json:"tamer_name"`
	IsAI         bool            `json:"is_ai"`
	AIDifficulty string          `json:"ai_difficulty"`
	Animals      []AnimalRequest `json:"animals"`
}

// CreateBattle projects catalog species into combatants, assembles the
// battle aggregate (which enters in_progress immediately), stamps the
// advisory strike order and persists everything.
func CreateBattle(repo BattleRepo, cfg *config.LoadedConfig, kind game.BattleKind, joinCode string, teams []TeamRequest) (*game.Battle, error) {
	participants := make([]game.Participant, 0, len(teams))
	for _, t := range teams {
		p, err := buildParticipant(repo, cfg, t)
		if err != nil {
			return nil, err
		}
		participants = append(participants, *p)
	}

	b, err := game.NewBattle(kind, participants, cfg.DefaultSettings)
	if err != nil {
		return nil, err
	}
	b.JoinCode = joinCode
	b.Message = "The battle has begun!"
	b.InitialOrder = engine.EncodeTurnOrder(engine.ComputeTurnOrder(b))
	// Arm the deadline immediately so a battle nobody acts in is still
	// visible to the timeout scanner.
	b.ActionDeadline = time.Now().Add(cfg.ActionTimeout)

	if err := repo.CreateBattle(b); err != nil {
		return nil, err
	}
	return b, nil
}

// buildParticipant resolves species and moves, then applies the level
// projection that turns a catalog template into a battle combatant.
func buildParticipant(repo BattleRepo, cfg *config.LoadedConfig, t TeamRequest) (*game.Participant, error) {
	p := &game.Participant{
		Name:         t.TamerName,
		IsAI:         t.IsAI,
		AIDifficulty: t.AIDifficulty,
	}
	for slot, a := range t.Animals {
		sp, err := repo.GetSpeciesByName(a.Species)
		if err != nil || sp == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, a.Species)
		}
		c, err := projectCombatant(cfg, sp, a, slot)
		if err != nil {
			return nil, err
		}
		p.Combatants = append(p.Combatants, *c)
	}
	return p, nil
}

func projectCombatant(cfg *config.LoadedConfig, sp *game.Species, a AnimalRequest, slot int) (*game.Combatant, error) {
	level := a.Level
	if level < 1 {
		level = 1
	}

	moveNames := a.Moves
	if len(moveNames) == 0 {
		moveNames = sp.LearnableMoves
	}
	if len(moveNames) > game.MaxMovesPerCombatant {
		moveNames = moveNames[:game.MaxMovesPerCombatant]
	}
	learnable := make(map[string]struct{}, len(sp.LearnableMoves))
	for _, n := range sp.LearnableMoves {
		learnable[keys.MoveKey(n)] = struct{}{}
	}
	moves := make([]game.Move, 0, len(moveNames))
	for _, n := range moveNames {
		m, ok := cfg.MoveByName(n)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMove, n)
		}
		if _, ok := learnable[keys.MoveKey(n)]; !ok {
			return nil, fmt.Errorf("%w: %s cannot learn %s", ErrMoveNotLearnable, sp.Name, n)
		}
		moves = append(moves, m)
	}

	maxHealth := sp.BaseHealth + level*2
	c := &game.Combatant{
		SpeciesName:   sp.Name,
		Nickname:      a.Nickname,
		Level:         level,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		Attack:        sp.BaseAttack + level,
		Defense:       sp.BaseDefense + level,
		Speed:         sp.BaseSpeed + level,
		Intelligence:  sp.BaseIntel + level,
		Stamina:       sp.BaseStamina + level,
		SlotIndex:     slot,
		Types:         sp.Types,
		TypeTags:      game.JoinList(sp.Types),
		Moves:         moves,
		MoveNames:     game.JoinList(moveNames),
	}
	return c, nil
}
