package constants

// Centralized constants for env keys, routes and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "UPPAWS_CONFIG"
	EnvDBPath     = "UPPAWS_DB"

	// Defaults when the env vars are unset
	DefaultConfigPath = "./uppaws_config.json"
	DefaultDBPath     = "./data/uppaws.db"
)

// Flat rewards applied by termination detection. Winners only; a forfeit
// awards nothing.
const (
	VictoryExperience = 50
	VictoryCurrency   = 25
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteSpecies      = "/species"
	RouteVersion      = "/version"
	RouteBattles      = "/battles"
	RouteBattlesJoin  = "/battles/join"
	RouteBattleByCode = "/battles/:battleCode"
	RouteBattleAction = "/battles/:battleCode/action"
	RouteBattleLog    = "/battles/:battleCode/log"
)

// Common JSON response keys
const (
	JSONKeyError = "error"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidBattleCode   = "Invalid battle code"
	ErrBattleNotFound      = "Battle not found"
	ErrBattleNotInProgress = "Battle is not in progress"
	ErrBattleNotJoinable   = "Battle is not waiting for an opponent"
	ErrFailedFetchSpecies  = "Failed to fetch species"
	ErrFailedFetchLog      = "Failed to fetch battle log"
	ErrFailedCreateBattle  = "Failed to create battle"
	ErrFailedStoreAction   = "Failed to store action"
	ErrParticipantNotFound = "Participant not in this battle"
	ErrUnknownSpecies      = "Unknown species"
	ErrUnknownMove         = "Unknown move"
	ErrTeamTooLarge        = "Team exceeds the size cap"
	ErrTeamEmpty           = "Each side needs at least one animal"
)

// Logging field names
const (
	LogFieldBattleID    = "battle_id"
	LogFieldBattleCode  = "battle_code"
	LogFieldParticipant = "participant"
	LogFieldAddr        = "addr"
	LogFieldSpecies     = "species"
)
