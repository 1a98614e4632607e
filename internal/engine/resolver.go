package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// Protocol errors: these mean the caller misused the engine and are never
// silently ignored. Gameplay-legal failures come back as Outcome values.
var (
	ErrBattleNotInProgress = errors.New("battle is not in progress")
	ErrInvalidParticipant  = errors.New("action names a participant outside the battle")
	ErrInvalidSlot         = errors.New("action names a slot outside the team")
	ErrUnknownActionType   = errors.New("unknown action type")
)

// Engine owns one battle for its lifetime and resolves submitted actions
// against it. Access must be serialized by the caller: the engine assumes
// exactly one action in flight at a time and takes no locks of its own.
type Engine struct {
	battle *game.Battle
	ledger *StatusLedger
	chart  TypeChart
	rng    Rand
	order  []SlotKey
}

type Option func(*Engine)

// WithRand pins the randomness source (seeded battles, tests).
func WithRand(r Rand) Option { return func(e *Engine) { e.rng = r } }

// WithTypeChart replaces the built-in effectiveness chart.
func WithTypeChart(tc TypeChart) Option { return func(e *Engine) { e.chart = tc } }

// New wraps a fully populated battle. The initial strike order is computed
// here, once, and kept as advisory metadata.
func New(b *game.Battle, opts ...Option) *Engine {
	e := &Engine{
		battle: b,
		ledger: NewStatusLedger(b),
		chart:  DefaultTypeChart(),
		rng:    NewRand(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.order = ComputeTurnOrder(b)
	if b.InitialOrder == "" {
		b.InitialOrder = EncodeTurnOrder(e.order)
	}
	return e
}

// Battle returns the engine's current state snapshot.
func (e *Engine) Battle() *game.Battle { return e.battle }

// Ledger exposes the status ledger for read access.
func (e *Engine) Ledger() *StatusLedger { return e.ledger }

// TurnOrder returns the advisory initial strike order.
func (e *Engine) TurnOrder() []SlotKey { return e.order }

// Resolve validates and executes one submitted action. After the action's
// own effects — whatever the action type — the status ledger ticks, then
// termination is checked, then the turn counter advances. That ordering is
// fixed: a poison tick can end a battle the action's damage did not.
func (e *Engine) Resolve(a game.Action) (*Outcome, error) {
	b := e.battle
	if b.State != game.BattleInProgress {
		return nil, ErrBattleNotInProgress
	}
	if a.Participant < 0 || a.Participant >= len(b.Participants) {
		return nil, ErrInvalidParticipant
	}

	out := &Outcome{}
	var err error
	switch a.Type {
	case game.ActionAttack:
		err = e.resolveAttack(a, out)
	case game.ActionSwitch:
		err = e.resolveSwitch(a, out)
	case game.ActionUseItem:
		// Deliberate stub: the item contract exists but is not implemented
		// in this engine. Not an error — the battle continues.
		out.Success = false
		out.Message = "Items cannot be used yet."
	case game.ActionForfeit:
		e.resolveForfeit(a, out)
	default:
		return nil, ErrUnknownActionType
	}
	if err != nil {
		return nil, err
	}

	out.Effects = append(out.Effects, e.ledger.Tick()...)
	e.checkTermination(out)
	b.CurrentTurn++
	return out, nil
}

func (e *Engine) resolveAttack(a game.Action, out *Outcome) error {
	b := e.battle
	team := b.Participants[a.Participant].TeamIndex
	actor := b.CombatantAt(team, a.Slot)
	if actor == nil {
		return ErrInvalidSlot
	}
	if a.MoveSlot < 0 || a.MoveSlot >= len(actor.Moves) {
		return ErrInvalidSlot
	}
	if actor.Fainted() {
		out.Success = false
		out.Message = fmt.Sprintf("%s has fainted and cannot attack.", actor.DisplayName())
		return nil
	}
	move := actor.Moves[a.MoveSlot]

	oppTeam := b.OpposingTeam(team)
	target, targetSlot := b.FirstLiving(oppTeam)
	if target == nil {
		out.Success = false
		out.Message = "No opposing combatant remains to attack."
		return nil
	}

	// Single-shot accuracy gate.
	if e.rng.Float64() >= float64(move.Accuracy)/100.0 {
		out.Success = false
		out.Message = fmt.Sprintf("%s used %s, but it missed!", actor.DisplayName(), move.Name)
		return nil
	}

	damage := 0
	crit := false
	effectiveness := 1.0
	if move.Category != game.CategoryStatus {
		atk, def := attackDefense(actor, target, move.Category)
		effectiveness = e.chart.Effectiveness(move.Type, target.Types)
		crit = rollCrit(actor.Speed, e.rng)
		mult := 1.0
		if crit {
			mult = CritMultiplier
		}
		damage = ComputeDamage(actor.Level, move.Power, atk, def, effectiveness, mult, randomFactor(e.rng))
		target.ApplyDamage(damage)
		out.Effects = append(out.Effects, EffectDescriptor{
			Type:    "damage",
			Target:  SlotKey{Team: oppTeam, Slot: targetSlot}.String(),
			Value:   damage,
			Message: fmt.Sprintf("%s takes %d damage", target.DisplayName(), damage),
		})
	}

	msg := fmt.Sprintf("%s used %s!", actor.DisplayName(), move.Name)
	if crit {
		msg += " A critical hit!"
	}
	switch {
	case effectiveness > 1.0:
		msg += " It's super effective!"
	case effectiveness < 1.0:
		msg += " It's not very effective..."
	}

	b.Records = append(b.Records, game.MoveRecord{
		BattleID:         b.ID,
		Turn:             b.CurrentTurn,
		ParticipantIndex: a.Participant,
		ActionType:       game.ActionAttack,
		MoveName:         move.Name,
		Damage:           damage,
		Message:          msg,
	})

	e.applyMoveEffects(actor, move, SlotKey{Team: team, Slot: a.Slot}, SlotKey{Team: oppTeam, Slot: targetSlot}, out)

	out.Success = true
	out.Message = msg
	return nil
}

// applyMoveEffects rolls each move effect independently and applies the
// ones that land.
func (e *Engine) applyMoveEffects(actor *game.Combatant, move game.Move, self, opp SlotKey, out *Outcome) {
	for _, eff := range move.Effects {
		if e.rng.Float64() >= eff.Chance {
			continue
		}
		targetKey := opp
		if eff.Target == game.TargetSelf {
			targetKey = self
		}
		switch eff.Type {
		case game.EffectPoison, game.EffectBurn:
			duration := eff.Duration
			if duration <= 0 {
				duration = DefaultStatusDuration
			}
			e.ledger.Add(targetKey, game.StatusEffect{
				Type:       eff.Type,
				Duration:   duration,
				Magnitude:  eff.Magnitude,
				SourceName: actor.DisplayName(),
			})
			victim := e.battle.CombatantAt(targetKey.Team, targetKey.Slot)
			out.Effects = append(out.Effects, EffectDescriptor{
				Type:    string(eff.Type),
				Target:  targetKey.String(),
				Value:   eff.Magnitude,
				Message: fmt.Sprintf("%s was afflicted by %s", victim.DisplayName(), eff.Type),
			})
		case game.EffectHeal:
			restored := actor.Heal(eff.Magnitude)
			out.Effects = append(out.Effects, EffectDescriptor{
				Type:    "heal",
				Target:  self.String(),
				Value:   restored,
				Message: fmt.Sprintf("%s restored %d health", actor.DisplayName(), restored),
			})
		case game.EffectStatChange:
			victim := e.battle.CombatantAt(targetKey.Team, targetKey.Slot)
			if victim == nil {
				continue
			}
			applyStatChange(victim, eff.Stat, eff.Magnitude)
			out.Effects = append(out.Effects, EffectDescriptor{
				Type:    "stat_change",
				Target:  targetKey.String(),
				Value:   eff.Magnitude,
				Message: fmt.Sprintf("%s's %s changed by %d", victim.DisplayName(), eff.Stat, eff.Magnitude),
			})
		}
	}
}

func applyStatChange(c *game.Combatant, stat string, delta int) {
	clamp := func(v int) int {
		if v < 1 {
			return 1
		}
		return v
	}
	switch stat {
	case "attack":
		c.Attack = clamp(c.Attack + delta)
	case "defense":
		c.Defense = clamp(c.Defense + delta)
	case "speed":
		c.Speed = clamp(c.Speed + delta)
	case "intelligence":
		c.Intelligence = clamp(c.Intelligence + delta)
	case "stamina":
		c.Stamina = clamp(c.Stamina + delta)
	}
}

// resolveSwitch exchanges two slots on the acting participant's own team.
// A positional swap, never a remove/insert.
func (e *Engine) resolveSwitch(a game.Action, out *Outcome) error {
	b := e.battle
	if !b.Settings.AllowSwitching {
		out.Success = false
		out.Message = "Switching is not allowed in this format."
		return nil
	}
	team := b.Participants[a.Participant].TeamIndex
	src := b.CombatantAt(team, a.Slot)
	dst := b.CombatantAt(team, a.SwitchToSlot)
	if src == nil || dst == nil {
		return ErrInvalidSlot
	}
	if a.Slot == a.SwitchToSlot {
		out.Success = false
		out.Message = "A combatant cannot switch with itself."
		return nil
	}
	if dst.Fainted() {
		out.Success = false
		out.Message = fmt.Sprintf("%s has fainted and cannot switch in.", dst.DisplayName())
		return nil
	}

	cs := b.Participants[team].Combatants
	cs[a.Slot], cs[a.SwitchToSlot] = cs[a.SwitchToSlot], cs[a.Slot]
	cs[a.Slot].SlotIndex = a.Slot
	cs[a.SwitchToSlot].SlotIndex = a.SwitchToSlot

	msg := fmt.Sprintf("%s switched %s into slot %d.", b.Participants[a.Participant].Name, cs[a.Slot].DisplayName(), a.Slot)
	b.Records = append(b.Records, game.MoveRecord{
		BattleID:         b.ID,
		Turn:             b.CurrentTurn,
		ParticipantIndex: a.Participant,
		ActionType:       game.ActionSwitch,
		Message:          msg,
	})
	out.Success = true
	out.Message = msg
	out.Effects = append(out.Effects, EffectDescriptor{
		Type:    "switch",
		Target:  SlotKey{Team: team, Slot: a.Slot}.String(),
		Value:   a.SwitchToSlot,
		Message: msg,
	})
	return nil
}

// resolveForfeit ends the battle immediately: the other side wins, with no
// experience or currency awarded.
func (e *Engine) resolveForfeit(a game.Action, out *Outcome) {
	b := e.battle
	loser := &b.Participants[a.Participant]
	winner := &b.Participants[b.OpposingTeam(loser.TeamIndex)]

	res := &game.BattleResult{
		BattleID:   b.ID,
		WinnerName: winner.Name,
		LoserName:  loser.Name,
		IsDraw:     false,
	}
	b.Result = res
	b.State = game.BattleEnded
	msg := fmt.Sprintf("%s forfeited the battle. %s wins!", loser.Name, winner.Name)
	b.Message = msg
	b.Records = append(b.Records, game.MoveRecord{
		BattleID:         b.ID,
		Turn:             b.CurrentTurn,
		ParticipantIndex: a.Participant,
		ActionType:       game.ActionForfeit,
		Message:          msg,
	})
	out.Success = true
	out.Message = msg
	out.BattleEnded = true
	out.Result = res
}
