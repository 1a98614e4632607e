package game

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BattleState is the lifecycle state of a battle. Transitions are
// waiting -> in_progress -> ended and `ended` is terminal.
type BattleState string

const (
	BattleWaiting    BattleState = "waiting"
	BattleInProgress BattleState = "in_progress"
	BattleEnded      BattleState = "ended"
)

// BattleKind distinguishes the context a battle was started in. The engine
// treats all kinds the same; the AI uses the kind to pick a playstyle.
type BattleKind string

const (
	BattleWild       BattleKind = "wild"
	BattleTrainer    BattleKind = "trainer"
	BattleGym        BattleKind = "gym"
	BattleTournament BattleKind = "tournament"
	BattleRaid       BattleKind = "raid"
)

// MoveCategory selects which stats feed the damage formula. Status moves
// deal no direct damage and only carry effects.
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
	CategoryStatus   MoveCategory = "status"
)

// ActionType is a player- or AI-submitted intent.
type ActionType string

const (
	ActionAttack  ActionType = "attack"
	ActionSwitch  ActionType = "switch"
	ActionUseItem ActionType = "use_item"
	ActionForfeit ActionType = "forfeit"
)

// EffectType tags both move effects and active status conditions.
type EffectType string

const (
	EffectPoison     EffectType = "poison"
	EffectBurn       EffectType = "burn"
	EffectHeal       EffectType = "heal"
	EffectStatChange EffectType = "stat_change"
)

// TargetSelector names who a move effect applies to.
type TargetSelector string

const (
	TargetSelf     TargetSelector = "self"
	TargetOpponent TargetSelector = "opponent"
	TargetField    TargetSelector = "field"
)

// MaxMovesPerCombatant caps the move list carried into battle.
const MaxMovesPerCombatant = 4

// Species is a catalog template for an animal. Only the name is persisted;
// stats, type tags and the learnable move list come from uppaws_config.json,
// which stays the single source of truth.
type Species struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex"`

	Types        []string `json:"types" gorm:"-"`
	BaseHealth   int      `json:"base_health" gorm:"-"`
	BaseAttack   int      `json:"base_attack" gorm:"-"`
	BaseDefense  int      `json:"base_defense" gorm:"-"`
	BaseSpeed    int      `json:"base_speed" gorm:"-"`
	BaseIntel    int      `json:"base_intelligence" gorm:"-"`
	BaseStamina  int      `json:"base_stamina" gorm:"-"`
	LearnableMoves []string `json:"learnable_moves" gorm:"-"`
}

func (Species) TableName() string { return "species_templates" }

// MoveEffect is one probabilistic side effect of a move. Chance is rolled
// per resolution in [0,1); Duration is in turns for timed conditions.
type MoveEffect struct {
	Type      EffectType     `json:"type"`
	Chance    float64        `json:"chance"`
	Magnitude int            `json:"magnitude"`
	Duration  int            `json:"duration"`
	Stat      string         `json:"stat"`
	Target    TargetSelector `json:"target"`
}

// Move is a config-defined move. Moves are never persisted; combatants
// store move names and are re-hydrated from config on every load.
type Move struct {
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Power      int          `json:"power"`
	Accuracy   int          `json:"accuracy"`
	EnergyCost int          `json:"energy_cost"`
	Category   MoveCategory `json:"category"`
	Effects    []MoveEffect `json:"effects"`
}

// StatusEffect is an active timed condition on a combatant. At most one
// effect of a given type is active per combatant; re-applying replaces it.
type StatusEffect struct {
	gorm.Model
	CombatantID uint       `json:"-"`
	Type        EffectType `json:"type"`
	Duration    int        `json:"duration"`
	Magnitude   int        `json:"magnitude"`
	SourceName  string     `json:"source_name"`
}

// Combatant is an animal instance projected into a battle slot. Health is
// clamped to [0, MaxHealth]; a combatant at 0 health has fainted.
type Combatant struct {
	gorm.Model
	ParticipantID uint   `json:"-"`
	SpeciesName   string `json:"species_name"`
	Nickname      string `json:"nickname"`
	Level         int    `json:"level"`
	MaxHealth     int    `json:"max_health"`
	CurrentHealth int    `json:"current_health"`
	Attack        int    `json:"attack"`
	Defense       int    `json:"defense"`
	Speed         int    `json:"speed"`
	Intelligence  int    `json:"intelligence"`
	Stamina       int    `json:"stamina"`
	SlotIndex     int    `json:"slot_index"`

	// TypeTags and MoveNames are the persisted comma-joined forms; Types
	// and Moves are hydrated from config by the repository on load.
	TypeTags  string   `json:"-" gorm:"column:type_tags"`
	MoveNames string   `json:"-" gorm:"column:move_names"`
	Types     []string `json:"types" gorm:"-"`
	Moves     []Move   `json:"moves" gorm:"-"`

	StatusEffects []StatusEffect `json:"status_effects"`
}

// DisplayName prefers the tamer-given nickname over the species name.
func (c *Combatant) DisplayName() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	return c.SpeciesName
}

// Fainted reports whether this combatant can no longer act.
func (c *Combatant) Fainted() bool { return c.CurrentHealth <= 0 }

// ApplyDamage subtracts health, clamped at zero.
func (c *Combatant) ApplyDamage(n int) {
	c.CurrentHealth -= n
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
}

// Heal restores health up to MaxHealth and returns the amount actually
// restored.
func (c *Combatant) Heal(n int) int {
	before := c.CurrentHealth
	c.CurrentHealth += n
	if c.CurrentHealth > c.MaxHealth {
		c.CurrentHealth = c.MaxHealth
	}
	return c.CurrentHealth - before
}

// MoveNameList splits the persisted move-name column.
func (c *Combatant) MoveNameList() []string { return splitList(c.MoveNames) }

// TypeList splits the persisted type-tag column.
func (c *Combatant) TypeList() []string { return splitList(c.TypeTags) }

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinList is the inverse of splitList, used when projecting combatants.
func JoinList(parts []string) string { return strings.Join(parts, ",") }

// Participant is one side of a battle. Immutable once the battle starts,
// except for the readiness flag before start.
type Participant struct {
	gorm.Model
	BattleID     uint        `json:"-"`
	Name         string      `json:"name"`
	TeamIndex    int         `json:"team_index"`
	IsAI         bool        `json:"is_ai"`
	AIDifficulty string      `json:"ai_difficulty"`
	Ready        bool        `json:"ready"`
	Combatants   []Combatant `json:"combatants"`
}

func (Participant) TableName() string { return "battle_participants" }

// Team returns the participant's combatant slots.
func (p *Participant) Team() []Combatant { return p.Combatants }

// BattleSettings are fixed at battle creation.
type BattleSettings struct {
	MaxTeamSize          int    `json:"max_team_size"`
	TurnTimeLimitSeconds int    `json:"turn_time_limit_seconds"`
	AllowItems           bool   `json:"allow_items"`
	AllowSwitching       bool   `json:"allow_switching"`
	Format               string `json:"format"`
}

// MoveRecord is one entry of the chronological battle log. The ordered log
// is the serializable replay projection; storing or shipping it elsewhere
// is the caller's business.
type MoveRecord struct {
	gorm.Model
	BattleID         uint       `json:"-"`
	Turn             int        `json:"turn"`
	ParticipantIndex int        `json:"participant_index"`
	ActionType       ActionType `json:"action_type"`
	MoveName         string     `json:"move_name"`
	Damage           int        `json:"damage"`
	Message          string     `json:"message"`
}

// BattleResult is the terminal snapshot, created exactly once when the
// battle ends (by termination detection or forfeit).
type BattleResult struct {
	gorm.Model
	BattleID          uint   `json:"-"`
	WinnerName        string `json:"winner_name"`
	LoserName         string `json:"loser_name"`
	IsDraw            bool   `json:"is_draw"`
	ExperienceAwarded int    `json:"experience_awarded"`
	CurrencyAwarded   int    `json:"currency_awarded"`
	ItemsAwarded      string `json:"items_awarded"`
	Achievements      string `json:"achievements"`
}

// Action is a transient intent consumed by the resolver. Actions are never
// persisted standalone; resolved actions land in the MoveRecord log.
type Action struct {
	Type         ActionType `json:"type"`
	Participant  int        `json:"participant"`
	Slot         int        `json:"slot"`
	MoveSlot     int        `json:"move_slot"`
	TargetSlot   int        `json:"target_slot"`
	SwitchToSlot int        `json:"switch_to_slot"`
}

// Battle is the root aggregate. It is mutated in place by every resolved
// action and becomes read-only once State reaches BattleEnded.
type Battle struct {
	gorm.Model
	Kind         BattleKind     `json:"kind"`
	JoinCode     string         `json:"join_code" gorm:"unique"`
	State        BattleState    `json:"state"`
	CurrentTurn  int            `json:"current_turn"`
	Participants []Participant  `json:"participants"`
	Records      []MoveRecord   `json:"records"`
	Result       *BattleResult  `json:"result"`
	Settings     BattleSettings `json:"settings" gorm:"embedded;embeddedPrefix:settings_"`
	Message      string         `json:"message"`
	// InitialOrder is the advisory strike order computed once at battle
	// start (comma-joined slot keys, fastest first). Display metadata only;
	// the resolver does not consult it.
	InitialOrder   string    `json:"initial_order"`
	ActionDeadline time.Time `json:"action_deadline"`
}
