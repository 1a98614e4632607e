package engine

import (
	"context"
	"errors"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// ActionProvider is the AI collaborator contract. The engine never looks
// inside the brain: it refreshes state, asks for the best action, and
// validates the answer with the same checks applied to any action.
type ActionProvider interface {
	UpdateState(*game.Battle)
	BestAction() (game.Action, error)
}

var ErrOrchestratorStopped = errors.New("orchestrator stopped before the battle ended")

// Orchestrator drives one battle end to end, strictly alternating between
// waiting for a human action and querying an AI handle. It is the sole
// owner of its battle for its lifetime; no two actions ever resolve
// concurrently. AI handles live here as an explicit per-battle field, not
// in any process-wide registry.
type Orchestrator struct {
	eng     *Engine
	ai      map[int]ActionProvider
	delays  map[int]time.Duration
	actions chan pendingAction
	present func(*Outcome)
	onEnd   func(*game.BattleResult)
	sleep   func(time.Duration)
}

type pendingAction struct {
	action game.Action
	reply  chan submitReply
}

type submitReply struct {
	outcome *Outcome
	err     error
}

type OrchestratorOption func(*Orchestrator)

// WithAI registers an AI handle for a participant, with the pacing delay
// applied before each query. The delay exists purely for perceived pacing
// and never changes engine output.
func WithAI(participant int, p ActionProvider, thinkDelay time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.ai[participant] = p
		o.delays[participant] = thinkDelay
	}
}

// WithPresenter relays each resolved outcome to the presentation boundary.
func WithPresenter(fn func(*Outcome)) OrchestratorOption {
	return func(o *Orchestrator) { o.present = fn }
}

// WithBattleEndCallback fires once when the battle finalizes.
func WithBattleEndCallback(fn func(*game.BattleResult)) OrchestratorOption {
	return func(o *Orchestrator) { o.onEnd = fn }
}

// withSleep replaces the pacing sleep; tests use this to run instantly.
func withSleep(fn func(time.Duration)) OrchestratorOption {
	return func(o *Orchestrator) { o.sleep = fn }
}

func NewOrchestrator(eng *Engine, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		eng:     eng,
		ai:      make(map[int]ActionProvider),
		delays:  make(map[int]time.Duration),
		actions: make(chan pendingAction),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SubmitAction delivers a human action to the loop and blocks until it has
// been resolved (or the context is cancelled). This is the single external
// entry point while Run is live.
func (o *Orchestrator) SubmitAction(ctx context.Context, a game.Action) (*Outcome, error) {
	req := pendingAction{action: a, reply: make(chan submitReply, 1)}
	select {
	case o.actions <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case rep := <-req.reply:
		return rep.outcome, rep.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run sequences the match until it ends. The loop has exactly one
// suspension point: waiting for the next human action. AI actions are
// requested synchronously, preceded by the configured thinking delay.
func (o *Orchestrator) Run(ctx context.Context) (*game.BattleResult, error) {
	b := o.eng.Battle()
	next := 0
	for {
		if b.State != game.BattleInProgress {
			break
		}

		var out *Outcome
		if provider, isAI := o.ai[next]; isAI {
			if d := o.delays[next]; d > 0 {
				o.sleep(d)
			}
			provider.UpdateState(b)
			act, err := provider.BestAction()
			if err != nil {
				return nil, err
			}
			act.Participant = next
			out, err = o.eng.Resolve(act)
			if err != nil {
				// A structurally invalid AI action is caller misuse of the
				// AI contract; abort rather than spin.
				return nil, err
			}
		} else {
			var req pendingAction
			select {
			case req = <-o.actions:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if req.action.Participant != next {
				req.reply <- submitReply{err: ErrInvalidParticipant}
				continue
			}
			resolved, err := o.eng.Resolve(req.action)
			req.reply <- submitReply{outcome: resolved, err: err}
			if err != nil {
				// Protocol error: the turn was not consumed; keep waiting
				// for the same participant.
				continue
			}
			out = resolved
		}

		if o.present != nil {
			o.present(out)
		}
		if out.BattleEnded {
			break
		}
		next = (next + 1) % len(b.Participants)
	}

	if b.Result == nil {
		return nil, ErrOrchestratorStopped
	}
	if o.onEnd != nil {
		o.onEnd(b.Result)
	}
	return b.Result, nil
}
