package engine

import (
	"fmt"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// DefaultStatusDuration is used when a move effect does not set one.
const DefaultStatusDuration = 3

// SlotKey addresses a combatant by team and slot position.
type SlotKey struct {
	Team int
	Slot int
}

func (k SlotKey) String() string { return fmt.Sprintf("team%d/slot%d", k.Team, k.Slot) }

// StatusLedger owns the active timed conditions of a battle, keyed by
// (team, slot). Storage rides on the combatants themselves so effects
// follow a combatant through slot swaps and survive persistence; the
// ledger is the only code that mutates them.
type StatusLedger struct {
	b *game.Battle
}

func NewStatusLedger(b *game.Battle) *StatusLedger {
	return &StatusLedger{b: b}
}

// Add attaches an effect to the addressed combatant, replacing any existing
// effect of the same type. Duplicates never stack: the newer instance wins.
func (l *StatusLedger) Add(key SlotKey, eff game.StatusEffect) {
	c := l.b.CombatantAt(key.Team, key.Slot)
	if c == nil {
		return
	}
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Type == eff.Type {
			c.StatusEffects[i].Duration = eff.Duration
			c.StatusEffects[i].Magnitude = eff.Magnitude
			c.StatusEffects[i].SourceName = eff.SourceName
			return
		}
	}
	c.StatusEffects = append(c.StatusEffects, eff)
}

// EffectsFor returns the active effects on the addressed combatant.
func (l *StatusLedger) EffectsFor(key SlotKey) []game.StatusEffect {
	c := l.b.CombatantAt(key.Team, key.Slot)
	if c == nil {
		return nil
	}
	return c.StatusEffects
}

// Tick applies every tracked effect once, then decrements durations and
// drops anything that reached zero. Called exactly once per resolved
// action, after the action's direct effects and before termination is
// checked, so a poison tick can end a battle on its own. Iteration is
// team-then-slot so ticking order is deterministic.
func (l *StatusLedger) Tick() []EffectDescriptor {
	var out []EffectDescriptor
	for ti := range l.b.Participants {
		cs := l.b.Participants[ti].Combatants
		for si := range cs {
			c := &cs[si]
			if len(c.StatusEffects) == 0 {
				continue
			}
			kept := c.StatusEffects[:0]
			for _, eff := range c.StatusEffects {
				switch eff.Type {
				case game.EffectPoison, game.EffectBurn:
					if !c.Fainted() {
						c.ApplyDamage(eff.Magnitude)
						out = append(out, EffectDescriptor{
							Type:    string(eff.Type),
							Target:  SlotKey{Team: ti, Slot: si}.String(),
							Value:   eff.Magnitude,
							Message: fmt.Sprintf("%s takes %d %s damage", c.DisplayName(), eff.Magnitude, eff.Type),
						})
					}
				}
				eff.Duration--
				if eff.Duration > 0 {
					kept = append(kept, eff)
				}
			}
			c.StatusEffects = kept
		}
	}
	return out
}
