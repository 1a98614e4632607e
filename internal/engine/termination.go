package engine

import (
	"fmt"

	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

// checkTermination runs after every resolved action, once status ticks have
// landed. Both teams wiped in the same resolution step is a draw, never a
// unilateral win. The result is built exactly once.
func (e *Engine) checkTermination(out *Outcome) {
	b := e.battle
	if b.State != game.BattleInProgress {
		// Already ended (forfeit); surface the existing result.
		if b.Result != nil {
			out.BattleEnded = true
			out.Result = b.Result
		}
		return
	}

	aWiped := b.TeamWiped(0)
	bWiped := b.TeamWiped(1)
	if !aWiped && !bWiped {
		return
	}

	res := &game.BattleResult{BattleID: b.ID}
	switch {
	case aWiped && bWiped:
		res.IsDraw = true
		b.Message = "The battle ended in a draw."
	case aWiped:
		res.WinnerName = b.Participants[1].Name
		res.LoserName = b.Participants[0].Name
	default:
		res.WinnerName = b.Participants[0].Name
		res.LoserName = b.Participants[1].Name
	}
	if !res.IsDraw {
		// Flat rewards for the winner only.
		res.ExperienceAwarded = constants.VictoryExperience
		res.CurrencyAwarded = constants.VictoryCurrency
		b.Message = fmt.Sprintf("%s wins the battle!", res.WinnerName)
	}

	b.Result = res
	b.State = game.BattleEnded
	out.BattleEnded = true
	out.Result = res
}
