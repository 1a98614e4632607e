package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/keys"
)

func storageConfig() *config.LoadedConfig {
	species := []game.Species{
		{
			Name: "River Otter", Types: []string{"river"},
			BaseHealth: 30, BaseAttack: 12, BaseDefense: 10,
			BaseSpeed: 14, BaseIntel: 11, BaseStamina: 10,
			LearnableMoves: []string{"Mud Shot"},
		},
		{
			Name: "Fernling", Types: []string{"forest"},
			BaseHealth: 27, BaseAttack: 9, BaseDefense: 10,
			BaseSpeed: 13, BaseIntel: 14, BaseStamina: 10,
			LearnableMoves: []string{"Vine Snap"},
		},
	}
	moves := []game.Move{
		{Name: "Mud Shot", Type: "river", Power: 50, Accuracy: 95, Category: game.CategoryPhysical},
		{Name: "Vine Snap", Type: "forest", Power: 50, Accuracy: 95, Category: game.CategoryPhysical},
	}
	byKey := make(map[string]game.Move, len(moves))
	for _, m := range moves {
		byKey[keys.MoveKey(m.Name)] = m
	}
	return &config.LoadedConfig{Species: species, MovesByKey: byKey}
}

func openTestRepo(t *testing.T) Repository {
	t.Helper()
	cfg := storageConfig()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "uppaws.db"), cfg.Species)
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	return NewSQLiteRepository(db, cfg)
}

func storedCombatant(species string, slot int) game.Combatant {
	return game.Combatant{
		SpeciesName:   species,
		Level:         5,
		MaxHealth:     30,
		CurrentHealth: 30,
		Attack:        10, Defense: 10, Speed: 10, Intelligence: 10, Stamina: 10,
		SlotIndex: slot,
		TypeTags:  "river",
		MoveNames: "Mud Shot",
	}
}

func storedBattle(code string) *game.Battle {
	return &game.Battle{
		Kind:        game.BattleTrainer,
		JoinCode:    code,
		State:       game.BattleInProgress,
		CurrentTurn: 1,
		Participants: []game.Participant{
			{Name: "Asha", TeamIndex: 0, Combatants: []game.Combatant{
				storedCombatant("River Otter", 0),
				storedCombatant("Fernling", 1),
			}},
			{Name: "Bruno", TeamIndex: 1, Combatants: []game.Combatant{
				storedCombatant("Fernling", 0),
			}},
		},
	}
}

func TestGetSpeciesByNameHandlesMultiWordNames(t *testing.T) {
	repo := openTestRepo(t)

	for _, name := range []string{"River Otter", "river otter", "  RIVER OTTER "} {
		s, err := repo.GetSpeciesByName(name)
		if err != nil || s == nil {
			t.Fatalf("GetSpeciesByName(%q): %v", name, err)
		}
		if s.Name != "River Otter" {
			t.Fatalf("GetSpeciesByName(%q) = %q", name, s.Name)
		}
		// Stats come from config, not the name-only DB row.
		if s.BaseHealth != 30 || len(s.LearnableMoves) != 1 {
			t.Fatalf("species not hydrated from config: %+v", s)
		}
	}
}

func TestSwitchSurvivesPersistenceRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	b := storedBattle("AAAA1111")
	if err := repo.CreateBattle(b); err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}

	// Swap slots the way the resolver does: positional exchange plus
	// slot-index fixup.
	cs := b.Participants[0].Combatants
	cs[0], cs[1] = cs[1], cs[0]
	cs[0].SlotIndex = 0
	cs[1].SlotIndex = 1
	if err := repo.UpdateBattle(b); err != nil {
		t.Fatalf("UpdateBattle: %v", err)
	}

	got, err := repo.GetBattleByID(b.ID)
	if err != nil {
		t.Fatalf("GetBattleByID: %v", err)
	}
	lead := got.CombatantAt(0, 0)
	if lead.SpeciesName != "Fernling" || lead.SlotIndex != 0 {
		t.Fatalf("slot 0 holds %s (SlotIndex=%d) after reload, want Fernling at 0", lead.SpeciesName, lead.SlotIndex)
	}
	back := got.CombatantAt(0, 1)
	if back.SpeciesName != "River Otter" || back.SlotIndex != 1 {
		t.Fatalf("slot 1 holds %s (SlotIndex=%d) after reload, want River Otter at 1", back.SpeciesName, back.SlotIndex)
	}
	// Hydration rebuilt the transient move list for every slot.
	if len(lead.Moves) != 1 || lead.Moves[0].Name != "Mud Shot" {
		t.Fatalf("moves not hydrated after reload: %+v", lead.Moves)
	}
}

func TestFindBattleByJoinCodeRestoresSlotOrder(t *testing.T) {
	repo := openTestRepo(t)
	b := storedBattle("BBBB2222")
	if err := repo.CreateBattle(b); err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	cs := b.Participants[0].Combatants
	cs[0], cs[1] = cs[1], cs[0]
	cs[0].SlotIndex = 0
	cs[1].SlotIndex = 1
	if err := repo.UpdateBattle(b); err != nil {
		t.Fatalf("UpdateBattle: %v", err)
	}

	got, err := repo.FindBattleByJoinCode("BBBB2222")
	if err != nil {
		t.Fatalf("FindBattleByJoinCode: %v", err)
	}
	if got.CombatantAt(0, 0).SpeciesName != "Fernling" {
		t.Fatalf("join-code load lost the swap: slot 0 holds %s", got.CombatantAt(0, 0).SpeciesName)
	}
}

func TestFindTimedOutBattles(t *testing.T) {
	repo := openTestRepo(t)

	expired := storedBattle("CCCC3333")
	expired.ActionDeadline = time.Now().Add(-time.Minute)
	if err := repo.CreateBattle(expired); err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	// No deadline armed: never reported.
	idle := storedBattle("DDDD4444")
	if err := repo.CreateBattle(idle); err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}

	battles, err := repo.FindTimedOutBattles(time.Now())
	if err != nil {
		t.Fatalf("FindTimedOutBattles: %v", err)
	}
	if len(battles) != 1 || battles[0].ID != expired.ID {
		t.Fatalf("timed-out battles = %+v, want only the expired one", battles)
	}
}
