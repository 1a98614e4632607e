package service

import (
	"fmt"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/keys"
)

// mockRepo is an in-memory Repository stand-in for service tests.
type mockRepo struct {
	species map[string]*game.Species
	battles map[uint]*game.Battle
	nextID  uint
	updates int
}

func newMockRepo(species ...game.Species) *mockRepo {
	r := &mockRepo{
		species: make(map[string]*game.Species),
		battles: make(map[uint]*game.Battle),
	}
	for i := range species {
		s := species[i]
		r.species[keys.SpeciesKey(s.Name)] = &s
	}
	return r
}

func (r *mockRepo) GetSpeciesByName(name string) (*game.Species, error) {
	s, ok := r.species[keys.SpeciesKey(name)]
	if !ok {
		return nil, fmt.Errorf("species %q not found", name)
	}
	return s, nil
}

func (r *mockRepo) CreateBattle(b *game.Battle) error {
	r.nextID++
	b.ID = r.nextID
	r.battles[b.ID] = b
	return nil
}

func (r *mockRepo) GetBattleByID(id uint) (*game.Battle, error) {
	b, ok := r.battles[id]
	if !ok {
		return nil, fmt.Errorf("battle %d not found", id)
	}
	return b, nil
}

func (r *mockRepo) FindBattleByJoinCode(code string) (*game.Battle, error) {
	for _, b := range r.battles {
		if b.JoinCode == code {
			return b, nil
		}
	}
	return nil, fmt.Errorf("battle %q not found", code)
}

func (r *mockRepo) UpdateBattle(b *game.Battle) error {
	r.updates++
	r.battles[b.ID] = b
	return nil
}

func testSpecies() []game.Species {
	return []game.Species{
		{
			Name: "Otterling", Types: []string{"river"},
			BaseHealth: 30, BaseAttack: 12, BaseDefense: 10,
			BaseSpeed: 14, BaseIntel: 11, BaseStamina: 10,
			LearnableMoves: []string{"Mud Shot"},
		},
		{
			Name: "Dunewolf", Types: []string{"desert"},
			BaseHealth: 28, BaseAttack: 14, BaseDefense: 9,
			BaseSpeed: 12, BaseIntel: 8, BaseStamina: 12,
			LearnableMoves: []string{"Sand Bite"},
		},
	}
}

func testConfig() *config.LoadedConfig {
	moves := []game.Move{
		{Name: "Mud Shot", Type: "river", Power: 50, Accuracy: 100, Category: game.CategoryPhysical},
		{Name: "Sand Bite", Type: "desert", Power: 45, Accuracy: 100, Category: game.CategoryPhysical},
	}
	byKey := make(map[string]game.Move, len(moves))
	for _, m := range moves {
		byKey[keys.MoveKey(m.Name)] = m
	}
	return &config.LoadedConfig{
		Species:       testSpecies(),
		MovesByKey:    byKey,
		Chart:         engine.DefaultTypeChart(),
		ServerAddress: ":8080",
		ActionTimeout: 30 * time.Second,
		DefaultSettings: game.BattleSettings{
			MaxTeamSize:    3,
			AllowSwitching: true,
			Format:         "standard",
		},
	}
}

func humanTeam() TeamRequest {
	return TeamRequest{
		TamerName: "Asha",
		Animals:   []AnimalRequest{{Species: "Otterling", Nickname: "Splash", Level: 5}},
	}
}

func aiTeam() TeamRequest {
	return TeamRequest{
		TamerName:    "CPU",
		IsAI:         true,
		AIDifficulty: "hard",
		Animals:      []AnimalRequest{{Species: "Dunewolf", Level: 5}},
	}
}
