package engine

import (
	"math"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// --- Combat math (pure, stateless) -------------------------------------

const (
	// CritMultiplier scales damage on a critical hit.
	CritMultiplier = 1.5
	// baseCritChance is the Bernoulli probability of a critical hit.
	baseCritChance = 1.0 / 16.0
	// fastCritBonus is added when the attacker's speed exceeds 100. It is
	// a probability bump, never a guarantee.
	fastCritBonus  = 0.01
	fastSpeedGate  = 100
	minRandomRatio = 0.85
)

// ComputeDamage applies the damage formula:
//
//	floor(((2*level/5 + 2) * power * atk/def / 50 + 2) * effectiveness * crit * randomFactor)
//
// The result is clamped to a minimum of 1 so a landed hit always counts.
func ComputeDamage(level, power, atk, def int, effectiveness, critMultiplier, randomFactor float64) int {
	if def < 1 {
		def = 1
	}
	base := (2.0*float64(level)/5.0+2.0)*float64(power)*float64(atk)/float64(def)/50.0 + 2.0
	dmg := int(math.Floor(base * effectiveness * critMultiplier * randomFactor))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// attackDefense picks the stat pair the move category uses: physical moves
// pit attack against defense, special moves intelligence against
// intelligence.
func attackDefense(attacker, defender *game.Combatant, category game.MoveCategory) (int, int) {
	if category == game.CategorySpecial {
		return attacker.Intelligence, defender.Intelligence
	}
	return attacker.Attack, defender.Defense
}

// CritChance returns the critical-hit probability for an attacker's speed.
func CritChance(speed int) float64 {
	p := baseCritChance
	if speed > fastSpeedGate {
		p += fastCritBonus
	}
	return p
}

// rollCrit draws the single-shot critical gate.
func rollCrit(speed int, rng Rand) bool {
	return rng.Float64() < CritChance(speed)
}

// randomFactor draws the damage spread uniformly from [0.85, 1.00].
func randomFactor(rng Rand) float64 {
	return minRandomRatio + rng.Float64()*(1.0-minRandomRatio)
}
