package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/engine"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/keys"
)

type speciesEntry struct {
	Name         string   `json:"name"`
	Types        []string `json:"types"`
	Health       int      `json:"health"`
	Attack       int      `json:"attack"`
	Defense      int      `json:"defense"`
	Speed        int      `json:"speed"`
	Intelligence int      `json:"intelligence"`
	Stamina      int      `json:"stamina"`
	Moves        []string `json:"moves"`
}

type moveEntry struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Power      int               `json:"power"`
	Accuracy   int               `json:"accuracy"`
	EnergyCost int               `json:"energy_cost"`
	Category   string            `json:"category"`
	Effects    []game.MoveEffect `json:"effects"`
}

type typeRelation struct {
	Attacking  string  `json:"attacking"`
	Defending  string  `json:"defending"`
	Multiplier float64 `json:"multiplier"`
}

type rawConfig struct {
	SpeciesList []speciesEntry `json:"species_list"`
	MoveList    []moveEntry    `json:"move_list"`
	TypeChart   []typeRelation `json:"type_chart"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
	Battle               *struct {
		MaxTeamSize          int    `json:"max_team_size"`
		TurnTimeLimitSeconds int    `json:"turn_time_limit_seconds"`
		AllowItems           bool   `json:"allow_items"`
		AllowSwitching       bool   `json:"allow_switching"`
		Format               string `json:"format"`
	} `json:"battle"`
}

// LoadedConfig contains the species catalog, move definitions, type chart
// and server settings. The config file is the single source of truth for
// species stats and move data; the database only stores names.
type LoadedConfig struct {
	Species         []game.Species
	MovesByKey      map[string]game.Move
	Chart           engine.TypeChart
	ServerAddress   string
	ActionTimeout   time.Duration
	DefaultSettings game.BattleSettings
}

// MoveByName looks a move up by its canonical key.
func (c *LoadedConfig) MoveByName(name string) (game.Move, bool) {
	m, ok := c.MovesByKey[keys.MoveKey(name)]
	return m, ok
}

// LoadConfig reads the configuration file at path. It requires non-empty
// `species_list` and `move_list` arrays and validates cross-references.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.MoveList) == 0 {
		return nil, fmt.Errorf("config file %s: move_list is empty (provide a 'move_list' array)", path)
	}
	moves := make(map[string]game.Move, len(rc.MoveList))
	for _, m := range rc.MoveList {
		if m.Name == "" {
			return nil, fmt.Errorf("config file %s: move entry missing 'name'", path)
		}
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return nil, fmt.Errorf("config file %s: move '%s' accuracy must be 0-100", path, m.Name)
		}
		switch game.MoveCategory(m.Category) {
		case game.CategoryPhysical, game.CategorySpecial, game.CategoryStatus:
		default:
			return nil, fmt.Errorf("config file %s: move '%s' has unknown category '%s'", path, m.Name, m.Category)
		}
		for _, eff := range m.Effects {
			if eff.Chance < 0 || eff.Chance > 1 {
				return nil, fmt.Errorf("config file %s: move '%s' effect chance must be 0-1", path, m.Name)
			}
		}
		key := keys.MoveKey(m.Name)
		if _, exists := moves[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate move name '%s'", path, m.Name)
		}
		moves[key] = game.Move{
			Name:       m.Name,
			Type:       m.Type,
			Power:      m.Power,
			Accuracy:   m.Accuracy,
			EnergyCost: m.EnergyCost,
			Category:   game.MoveCategory(m.Category),
			Effects:    m.Effects,
		}
	}

	if len(rc.SpeciesList) == 0 {
		return nil, fmt.Errorf("config file %s: species_list is empty (provide a 'species_list' array)", path)
	}
	nameSet := make(map[string]struct{}, len(rc.SpeciesList))
	species := make([]game.Species, 0, len(rc.SpeciesList))
	for _, s := range rc.SpeciesList {
		if s.Name == "" {
			return nil, fmt.Errorf("config file %s: species entry missing 'name'", path)
		}
		key := keys.SpeciesKey(s.Name)
		if _, exists := nameSet[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate species name '%s'", path, s.Name)
		}
		nameSet[key] = struct{}{}
		if len(s.Types) == 0 {
			return nil, fmt.Errorf("config file %s: species '%s' needs at least one type tag", path, s.Name)
		}
		for _, mn := range s.Moves {
			if _, ok := moves[keys.MoveKey(mn)]; !ok {
				return nil, fmt.Errorf("config file %s: species '%s' references unknown move '%s'", path, s.Name, mn)
			}
		}
		species = append(species, game.Species{
			Name:           s.Name,
			Types:          s.Types,
			BaseHealth:     s.Health,
			BaseAttack:     s.Attack,
			BaseDefense:    s.Defense,
			BaseSpeed:      s.Speed,
			BaseIntel:      s.Intelligence,
			BaseStamina:    s.Stamina,
			LearnableMoves: s.Moves,
		})
	}

	chart := engine.DefaultTypeChart()
	if len(rc.TypeChart) > 0 {
		chart = engine.TypeChart{}
		for _, rel := range rc.TypeChart {
			if rel.Attacking == "" || rel.Defending == "" || rel.Multiplier <= 0 {
				return nil, fmt.Errorf("config file %s: type_chart entries need attacking, defending and a positive multiplier", path)
			}
			if chart[rel.Attacking] == nil {
				chart[rel.Attacking] = map[string]float64{}
			}
			chart[rel.Attacking][rel.Defending] = rel.Multiplier
		}
	}

	addr := ":8080"
	if rc.Server != nil && strings.TrimSpace(rc.Server.Address) != "" {
		addr = rc.Server.Address
	}

	timeout := 60 * time.Second
	if rc.ActionTimeoutSeconds > 0 {
		timeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}

	settings := game.BattleSettings{
		MaxTeamSize:          3,
		TurnTimeLimitSeconds: int(timeout / time.Second),
		AllowItems:           false,
		AllowSwitching:       true,
		Format:               "standard",
	}
	if rc.Battle != nil {
		if rc.Battle.MaxTeamSize > 0 {
			settings.MaxTeamSize = rc.Battle.MaxTeamSize
		}
		if rc.Battle.TurnTimeLimitSeconds > 0 {
			settings.TurnTimeLimitSeconds = rc.Battle.TurnTimeLimitSeconds
		}
		settings.AllowItems = rc.Battle.AllowItems
		settings.AllowSwitching = rc.Battle.AllowSwitching
		if rc.Battle.Format != "" {
			settings.Format = rc.Battle.Format
		}
	}

	return &LoadedConfig{
		Species:         species,
		MovesByKey:      moves,
		Chart:           chart,
		ServerAddress:   addr,
		ActionTimeout:   timeout,
		DefaultSettings: settings,
	}, nil
}
