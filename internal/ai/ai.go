package ai

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// Difficulty tunes both move selection quality and thinking delay.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var ErrNoBattleState = errors.New("ai brain has no battle state")

// ThinkingDelay is the pacing pause before an AI action is requested.
// Purely cosmetic: it must never change what the brain picks.
func ThinkingDelay(d Difficulty) time.Duration {
	switch d {
	case Hard:
		return 1500 * time.Millisecond
	case Medium:
		return 900 * time.Millisecond
	default:
		return 400 * time.Millisecond
	}
}

// Brain is the default opponent: a greedy expected-damage move picker with
// difficulty-scaled sloppiness. Wild animals ignore strategy entirely and
// lash out at random.
type Brain struct {
	battle     *game.Battle
	idx        int
	kind       game.BattleKind
	difficulty Difficulty
	rng        *rand.Rand
	chart      engine.TypeChart
}

// New creates an AI handle for the given participant. One handle per
// battle per participant; handles are owned by whoever drives the loop.
func New(b *game.Battle, participantIndex int, kind game.BattleKind, difficulty Difficulty) *Brain {
	return &Brain{
		battle:     b,
		idx:        participantIndex,
		kind:       kind,
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		chart:      engine.DefaultTypeChart(),
	}
}

// UpdateState refreshes the brain's view before a query.
func (br *Brain) UpdateState(b *game.Battle) { br.battle = b }

// BestAction returns a structurally valid action for the current state.
// The engine re-validates it like any other action.
func (br *Brain) BestAction() (game.Action, error) {
	b := br.battle
	if b == nil {
		return game.Action{}, ErrNoBattleState
	}
	team := br.idx
	actor, slot := b.FirstLiving(team)
	if actor == nil {
		// Nothing left to fight with; concede rather than stall.
		return game.Action{Type: game.ActionForfeit, Participant: br.idx}, nil
	}
	if len(actor.Moves) == 0 {
		return game.Action{Type: game.ActionForfeit, Participant: br.idx}, nil
	}

	moveSlot := br.pickMove(actor, b.OpposingTeam(team))
	return game.Action{
		Type:        game.ActionAttack,
		Participant: br.idx,
		Slot:        slot,
		MoveSlot:    moveSlot,
	}, nil
}

func (br *Brain) pickMove(actor *game.Combatant, oppTeam int) int {
	// Wild battles: no tactics, any known move.
	if br.kind == game.BattleWild || br.difficulty == Easy {
		return br.rng.Intn(len(actor.Moves))
	}

	target, _ := br.battle.FirstLiving(oppTeam)
	best, bestScore := 0, -1.0
	for i, m := range actor.Moves {
		score := br.scoreMove(m, target)
		// Medium brains misjudge a little.
		if br.difficulty == Medium {
			score *= 0.8 + br.rng.Float64()*0.4
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// scoreMove estimates expected damage: power scaled by accuracy and type
// effectiveness. Status moves get a small flat score so they are picked
// occasionally when attacks are weak.
func (br *Brain) scoreMove(m game.Move, target *game.Combatant) float64 {
	if m.Category == game.CategoryStatus {
		return 10.0
	}
	eff := 1.0
	if target != nil {
		eff = br.chart.Effectiveness(m.Type, target.Types)
	}
	return float64(m.Power) * float64(m.Accuracy) / 100.0 * eff
}
