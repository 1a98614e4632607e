package engine

import "github.com/ayish1998/UpPaws-sub002/internal/game"

// EffectDescriptor is one presentation-facing entry of a resolved action:
// what happened, to whom, and by how much. The presentation boundary turns
// these into animations; it is never consulted for correctness.
type EffectDescriptor struct {
	Type    string `json:"type"`
	Target  string `json:"target"`
	Value   int    `json:"value"`
	Message string `json:"message"`
}

// Outcome is the structured result of resolving one action. Success=false
// with a message is a gameplay-legal failure (a miss, a fainted actor, an
// unimplemented item) — the battle continues; protocol misuse surfaces as
// an error from Resolve instead.
type Outcome struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Effects     []EffectDescriptor `json:"effects"`
	BattleEnded bool               `json:"battle_ended"`
	Result      *game.BattleResult `json:"result,omitempty"`
}
