package storage

import (
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/game"
)

type Repository interface {
	CreateSession(s *game.GameSession) error
	GetSessionByUUID(uuid string) (*game.GameSession, error)
	UpdateSession(s *game.GameSession) error
	DeleteSession(uuid string) error
	ListSessionsByPlayer(playerID string) ([]game.GameSession, error)

	// SaveHistory appends biomarker audit records; records must already
	// carry their SessionUUID.
	SaveHistory(records []game.BiomarkerHistory) error
	GetHistoryBySession(uuid string) ([]game.BiomarkerHistory, error)

	// FindIdleSessions returns sessions that are still open (lobby or in
	// progress) and whose last save is at or before the provided cutoff.
	// The caller decides how to resolve them (for example, pausing them
	// due to inactivity). Paused sessions are never reported.
	FindIdleSessions(cutoff time.Time) ([]game.GameSession, error)
}
