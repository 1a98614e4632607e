package game

import "errors"

var (
	ErrNeedTwoTeams  = errors.New("a battle needs exactly two participants")
	ErrEmptyTeam     = errors.New("every participant needs at least one combatant")
	ErrTeamTooLarge  = errors.New("team exceeds the configured size cap")
	ErrTooManyMoves  = errors.New("combatant knows more moves than the cap allows")
)

// NewBattle assembles the root aggregate and moves it straight to
// in_progress: a battle constructed with two populated teams has nothing to
// wait for. Callers that gather participants over time (PvP lobbies) build
// a waiting Battle themselves and call Start when the second team arrives.
func NewBattle(kind BattleKind, participants []Participant, settings BattleSettings) (*Battle, error) {
	b := &Battle{
		Kind:         kind,
		State:        BattleWaiting,
		Participants: participants,
		Settings:     settings,
	}
	if err := b.Start(); err != nil {
		return nil, err
	}
	return b, nil
}

// Start validates the teams and flips the battle to in_progress with the
// turn counter at 1. It is a no-op error on an already-ended battle.
func (b *Battle) Start() error {
	if len(b.Participants) != 2 {
		return ErrNeedTwoTeams
	}
	for i := range b.Participants {
		p := &b.Participants[i]
		p.TeamIndex = i
		if len(p.Combatants) == 0 {
			return ErrEmptyTeam
		}
		if b.Settings.MaxTeamSize > 0 && len(p.Combatants) > b.Settings.MaxTeamSize {
			return ErrTeamTooLarge
		}
		for j := range p.Combatants {
			c := &p.Combatants[j]
			c.SlotIndex = j
			if len(c.Moves) > MaxMovesPerCombatant {
				return ErrTooManyMoves
			}
			if c.CurrentHealth == 0 && c.MaxHealth > 0 {
				c.CurrentHealth = c.MaxHealth
			}
		}
		p.Ready = true
	}
	b.State = BattleInProgress
	b.CurrentTurn = 1
	return nil
}

// CombatantAt returns the combatant in a team slot, or nil when either
// index is out of range.
func (b *Battle) CombatantAt(team, slot int) *Combatant {
	if team < 0 || team >= len(b.Participants) {
		return nil
	}
	cs := b.Participants[team].Combatants
	if slot < 0 || slot >= len(cs) {
		return nil
	}
	return &cs[slot]
}

// FirstLiving returns the lowest-slot combatant with positive health on a
// team, along with its slot. Returns (nil, -1) when the team is wiped.
func (b *Battle) FirstLiving(team int) (*Combatant, int) {
	if team < 0 || team >= len(b.Participants) {
		return nil, -1
	}
	cs := b.Participants[team].Combatants
	for i := range cs {
		if !cs[i].Fainted() {
			return &cs[i], i
		}
	}
	return nil, -1
}

// TeamWiped reports whether no combatant on the team has positive health.
func (b *Battle) TeamWiped(team int) bool {
	_, slot := b.FirstLiving(team)
	return slot == -1
}

// OpposingTeam maps a team index to the other side of a two-team battle.
func (b *Battle) OpposingTeam(team int) int {
	return (team + 1) % len(b.Participants)
}
