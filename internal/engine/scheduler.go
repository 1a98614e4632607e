package engine

import (
	"sort"
	"strings"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// ComputeTurnOrder produces the initial strike order: every combatant with
// positive health, fastest first, ties broken by team then slot so the
// order is stable. This is advisory metadata for display and strategy; the
// resolver accepts actions for any participant in any order and the caller
// decides whose turn it is.
func ComputeTurnOrder(b *game.Battle) []SlotKey {
	var order []SlotKey
	for ti := range b.Participants {
		cs := b.Participants[ti].Combatants
		for si := range cs {
			if !cs[si].Fainted() {
				order = append(order, SlotKey{Team: ti, Slot: si})
			}
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		a := b.CombatantAt(order[i].Team, order[i].Slot)
		c := b.CombatantAt(order[j].Team, order[j].Slot)
		if a.Speed != c.Speed {
			return a.Speed > c.Speed
		}
		if order[i].Team != order[j].Team {
			return order[i].Team < order[j].Team
		}
		return order[i].Slot < order[j].Slot
	})
	return order
}

// EncodeTurnOrder serializes an order for storage on the battle record.
func EncodeTurnOrder(order []SlotKey) string {
	parts := make([]string, len(order))
	for i, k := range order {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}
