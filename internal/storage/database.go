package storage

import (
	"github.com/ayish1998/UpPaws-sub002/internal/constants"
	"github.com/ayish1998/UpPaws-sub002/internal/game"
	"github.com/ayish1998/UpPaws-sub002/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, keeps the schema updated via
// AutoMigrate and seeds the species catalog from config on first run.
func OpenAndMigrate(dataSourceName string, speciesFromConfig []game.Species) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&game.Species{},
		&game.Battle{},
		&game.Participant{},
		&game.Combatant{},
		&game.StatusEffect{},
		&game.MoveRecord{},
		&game.BattleResult{},
	)
	if err != nil {
		return nil, err
	}

	seedSpecies(db, speciesFromConfig)
	return db, nil
}

// seedSpecies inserts catalog rows for configured species that are not in
// the DB yet. Stats are never stored; the config stays the source of truth.
func seedSpecies(db *gorm.DB, speciesFromConfig []game.Species) {
	for _, s := range speciesFromConfig {
		var count int64
		db.Model(&game.Species{}).Where("name = ?", s.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&game.Species{Name: s.Name}).Error; err != nil {
			logging.Error("failed to seed species", err, logging.Fields{constants.LogFieldSpecies: s.Name})
		}
	}
}
