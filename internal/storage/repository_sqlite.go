package storage

import (
	"sort"
	"strings"
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/config"
	"github.com/ayish1998/UpPaws-sub002/internal/dedupe"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/keys"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByKey maps canonical species key -> config definition (stats,
	// types, learnable moves). Config is the source of truth on every load.
	configByKey map[string]game.Species
	movesByKey  map[string]game.Move
}

func NewSQLiteRepository(db *gorm.DB, cfg *config.LoadedConfig) Repository {
	m := make(map[string]game.Species, len(cfg.Species))
	for _, s := range cfg.Species {
		m[keys.SpeciesKey(s.Name)] = s
	}
	return &sqliteRepository{db: db, configByKey: m, movesByKey: cfg.MovesByKey}
}

// hydrateSpecies overlays config stats onto a DB row.
func (r *sqliteRepository) hydrateSpecies(s *game.Species) {
	if conf, ok := r.configByKey[keys.SpeciesKey(s.Name)]; ok {
		s.Types = conf.Types
		s.BaseHealth = conf.BaseHealth
		s.BaseAttack = conf.BaseAttack
		s.BaseDefense = conf.BaseDefense
		s.BaseSpeed = conf.BaseSpeed
		s.BaseIntel = conf.BaseIntel
		s.BaseStamina = conf.BaseStamina
		s.LearnableMoves = conf.LearnableMoves
	}
}

// hydrateCombatant rebuilds the non-persistent move and type lists. Type
// tags prefer the species config so chart rebalances apply to old battles;
// the persisted copy covers species later removed from config.
func (r *sqliteRepository) hydrateCombatant(c *game.Combatant) {
	if conf, ok := r.configByKey[keys.SpeciesKey(c.SpeciesName)]; ok {
		c.Types = conf.Types
	} else {
		c.Types = c.TypeList()
	}
	names := c.MoveNameList()
	c.Moves = make([]game.Move, 0, len(names))
	for _, n := range names {
		if m, ok := r.movesByKey[keys.MoveKey(n)]; ok {
			c.Moves = append(c.Moves, m)
		}
	}
}

// hydrateBattle restores slot order and rebuilds config-backed fields.
// Preloads hand back rows in primary-key order, which stops matching slot
// positions as soon as a switch swaps combatants; the engine addresses
// combatants positionally, so the slices must be re-sorted on every load.
func (r *sqliteRepository) hydrateBattle(b *game.Battle) {
	sort.SliceStable(b.Participants, func(i, j int) bool {
		return b.Participants[i].TeamIndex < b.Participants[j].TeamIndex
	})
	for pi := range b.Participants {
		cs := b.Participants[pi].Combatants
		sort.SliceStable(cs, func(i, j int) bool {
			return cs[i].SlotIndex < cs[j].SlotIndex
		})
		for ci := range cs {
			r.hydrateCombatant(&cs[ci])
		}
	}
}

func (r *sqliteRepository) GetSpecies() ([]game.Species, error) {
	// Collapse concurrent catalog reads into one query.
	v, err, _ := dedupe.CatalogGroup.Do("species_list", func() (interface{}, error) {
		var species []game.Species
		if err := r.db.Order("name asc").Find(&species).Error; err != nil {
			return nil, err
		}
		for i := range species {
			r.hydrateSpecies(&species[i])
		}
		return species, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.Species), nil
}

func (r *sqliteRepository) GetSpeciesByName(name string) (*game.Species, error) {
	key := keys.SpeciesKey(name)
	// The singleflight key canonicalizes spaces to underscores; the SQL
	// comparison must not, or multi-word names never match the stored rows.
	folded := strings.ToLower(strings.TrimSpace(name))
	v, err, _ := dedupe.SpeciesGroup.Do(key, func() (interface{}, error) {
		var s game.Species
		if err := r.db.Where("lower(name) = ?", folded).First(&s).Error; err != nil {
			return nil, err
		}
		r.hydrateSpecies(&s)
		return &s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Species), nil
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBattleByID(id uint) (*game.Battle, error) {
	var b game.Battle
	err := r.db.
		Preload("Participants.Combatants.StatusEffects").
		Preload("Records").
		Preload("Result").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	r.hydrateBattle(&b)
	return &b, nil
}

func (r *sqliteRepository) FindBattleByJoinCode(code string) (*game.Battle, error) {
	var b game.Battle
	err := r.db.
		Preload("Participants.Combatants.StatusEffects").
		Preload("Records").
		Preload("Result").
		Where("join_code = ?", code).First(&b).Error
	if err != nil {
		return nil, err
	}
	r.hydrateBattle(&b)
	return &b, nil
}

func (r *sqliteRepository) UpdateBattle(b *game.Battle) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
}

func (r *sqliteRepository) GetBattleRecords(battleID uint) ([]game.MoveRecord, error) {
	var records []game.MoveRecord
	err := r.db.Where("battle_id = ?", battleID).Order("id asc").Find(&records).Error
	return records, err
}

func (r *sqliteRepository) FindTimedOutBattles(now time.Time) ([]game.Battle, error) {
	var battles []game.Battle
	err := r.db.
		Preload("Participants.Combatants.StatusEffects").
		Where("state = ? AND action_deadline > ? AND action_deadline <= ?",
			game.BattleInProgress, time.Time{}, now).
		Find(&battles).Error
	if err != nil {
		return nil, err
	}
	for i := range battles {
		r.hydrateBattle(&battles[i])
	}
	return battles, nil
}
