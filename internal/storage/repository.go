package storage

import (
	"time"

	"github.com/ayish1998/UpPaws-sub002/internal/game"
)

type Repository interface {
	// Species catalog (names in the DB, stats hydrated from config).
	GetSpecies() ([]game.Species, error)
	GetSpeciesByName(name string) (*game.Species, error)

	CreateBattle(b *game.Battle) error
	GetBattleByID(id uint) (*game.Battle, error)
	FindBattleByJoinCode(code string) (*game.Battle, error)
	UpdateBattle(b *game.Battle) error

	// GetBattleRecords returns the chronological move log for replay export.
	GetBattleRecords(battleID uint) ([]game.MoveRecord, error)

	// FindTimedOutBattles returns in-progress battles whose action deadline
	// is at or before the provided time. The caller decides how to resolve
	// them (the timeout scanner forfeits the idle side).
	FindTimedOutBattles(now time.Time) ([]game.Battle, error)
}
