package engine

import (
	"testing"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

func TestPoisonTicksForItsFullDuration(t *testing.T) {
	b := testBattle(t,
		[]game.Combatant{testCombatant("otterling", 30, 10, 10, 10)},
		[]game.Combatant{testCombatant("dunewolf", 30, 10, 10, 10)},
	)
	ledger := NewStatusLedger(b)
	key := SlotKey{Team: 1, Slot: 0}
	ledger.Add(key, game.StatusEffect{Type: game.EffectPoison, Duration: 3, Magnitude: 4})

	victim := b.CombatantAt(1, 0)
	for i := 0; i < 3; i++ {
		effects := ledger.Tick()
		if len(effects) != 1 {
			t.Fatalf("tick %d: got %d effects, want 1", i+1, len(effects))
		}
	}
	if victim.CurrentHealth != 30-3*4 {
		t.Fatalf("health = %d, want %d", victim.CurrentHealth, 30-3*4)
	}
	if len(ledger.EffectsFor(key)) != 0 {
		t.Fatalf("poison still present after duration elapsed")
	}
	// A fourth tick is a no-op.
	if effects := ledger.Tick(); len(effects) != 0 {
		t.Fatalf("expired effect still ticking: %v", effects)
	}
}

func TestSameTypeEffectReplacesNotStacks(t *testing.T) {
	b := testBattle(t,
		[]game.Combatant{testCombatant("otterling", 30, 10, 10, 10)},
		[]game.Combatant{testCombatant("dunewolf", 30, 10, 10, 10)},
	)
	ledger := NewStatusLedger(b)
	key := SlotKey{Team: 1, Slot: 0}
	ledger.Add(key, game.StatusEffect{Type: game.EffectPoison, Duration: 3, Magnitude: 2})
	ledger.Add(key, game.StatusEffect{Type: game.EffectPoison, Duration: 5, Magnitude: 6})

	effects := ledger.EffectsFor(key)
	if len(effects) != 1 {
		t.Fatalf("got %d poison instances, want 1", len(effects))
	}
	if effects[0].Duration != 5 || effects[0].Magnitude != 6 {
		t.Fatalf("newer instance did not win: %+v", effects[0])
	}
}

func TestDistinctEffectTypesCoexist(t *testing.T) {
	b := testBattle(t,
		[]game.Combatant{testCombatant("otterling", 30, 10, 10, 10)},
		[]game.Combatant{testCombatant("dunewolf", 30, 10, 10, 10)},
	)
	ledger := NewStatusLedger(b)
	key := SlotKey{Team: 0, Slot: 0}
	ledger.Add(key, game.StatusEffect{Type: game.EffectPoison, Duration: 2, Magnitude: 1})
	ledger.Add(key, game.StatusEffect{Type: game.EffectBurn, Duration: 2, Magnitude: 1})

	if got := len(ledger.EffectsFor(key)); got != 2 {
		t.Fatalf("got %d effects, want poison and burn to coexist", got)
	}
}

func TestFaintedCombatantTakesNoTickDamage(t *testing.T) {
	b := testBattle(t,
		[]game.Combatant{testCombatant("otterling", 30, 10, 10, 10)},
		[]game.Combatant{testCombatant("dunewolf", 30, 10, 10, 10), testCombatant("mirefang", 30, 10, 10, 8)},
	)
	ledger := NewStatusLedger(b)
	key := SlotKey{Team: 1, Slot: 0}
	ledger.Add(key, game.StatusEffect{Type: game.EffectBurn, Duration: 3, Magnitude: 5})
	b.CombatantAt(1, 0).CurrentHealth = 0

	effects := ledger.Tick()
	if len(effects) != 0 {
		t.Fatalf("fainted combatant was damaged by a tick: %v", effects)
	}
	// Duration still ran down.
	if got := ledger.EffectsFor(key); len(got) != 1 || got[0].Duration != 2 {
		t.Fatalf("duration did not decrement on fainted combatant: %+v", got)
	}
}
