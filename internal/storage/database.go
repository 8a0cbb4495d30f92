package storage

import (
	"github.com/pendraco002/homeostasis-cards/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database at dataSourceName and keeps its
// schema current via AutoMigrate. Session snapshots and their biomarker
// audit trail are the only tables; card and event content is never
// persisted, the content file stays the single source of truth.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.GameSession{}, &game.BiomarkerHistory{}); err != nil {
		return nil, err
	}
	return db, nil
}
