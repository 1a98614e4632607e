package engine

import (
	"testing"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// scriptRand replays a fixed stream of Float64 draws, then falls back to
// 0.99 so exhausted scripts stay deterministic.
type scriptRand struct {
	vals []float64
	i    int
}

func (r *scriptRand) Float64() float64 {
	if r.i >= len(r.vals) {
		return 0.99
	}
	v := r.vals[r.i]
	r.i++
	return v
}

func testMove(name string, power, accuracy int) game.Move {
	return game.Move{
		Name:     name,
		Type:     "river",
		Power:    power,
		Accuracy: accuracy,
		Category: game.CategoryPhysical,
	}
}

func testCombatant(species string, hp, atk, def, spd int, moves ...game.Move) game.Combatant {
	return game.Combatant{
		SpeciesName:   species,
		Level:         5,
		MaxHealth:     hp,
		CurrentHealth: hp,
		Attack:        atk,
		Defense:       def,
		Speed:         spd,
		Intelligence:  atk,
		Stamina:       10,
		Types:         []string{"forest"},
		Moves:         moves,
	}
}

func testBattle(t *testing.T, teamA, teamB []game.Combatant) *game.Battle {
	t.Helper()
	b, err := game.NewBattle(game.BattleTrainer, []game.Participant{
		{Name: "Asha", Combatants: teamA},
		{Name: "Bruno", Combatants: teamB},
	}, game.BattleSettings{MaxTeamSize: 3, AllowSwitching: true, Format: "standard"})
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	return b
}
