package storage

import (
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.GameSession) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByUUID(uuid string) (*game.GameSession, error) {
	var s game.GameSession
	if err := r.db.Where("session_uuid = ?", uuid).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.GameSession) error {
	return r.db.Save(s).Error
}

func (r *sqliteRepository) DeleteSession(uuid string) error {
	return r.db.Where("session_uuid = ?", uuid).Delete(&game.GameSession{}).Error
}

func (r *sqliteRepository) ListSessionsByPlayer(playerID string) ([]game.GameSession, error) {
	var sessions []game.GameSession
	if err := r.db.Where("player_id = ?", playerID).Order("created_at desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sqliteRepository) SaveHistory(records []game.BiomarkerHistory) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

func (r *sqliteRepository) GetHistoryBySession(uuid string) ([]game.BiomarkerHistory, error) {
	var records []game.BiomarkerHistory
	if err := r.db.Where("session_uuid = ?", uuid).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sqliteRepository) FindIdleSessions(cutoff time.Time) ([]game.GameSession, error) {
	open := []game.SessionStatus{game.StatusLobby, game.StatusInProgress}
	var sessions []game.GameSession
	if err := r.db.Where("status IN ? AND last_save <= ?", open, cutoff).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
