package service

import (
	"github.com/pendraco002/homeostasis-cards/internal/game"
)

// GetSession returns the current snapshot of a session.
func GetSession(repo SessionRepo, sessionUUID string) (*game.GameSession, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// ListSessions returns a player's sessions, newest first.
func ListSessions(repo interface {
	ListSessionsByPlayer(playerID string) ([]game.GameSession, error)
}, playerID string) ([]game.GameSession, error) {
	return repo.ListSessionsByPlayer(playerID)
}

// SessionHistory returns the biomarker audit trail of a session in
// application order.
func SessionHistory(repo interface {
	GetHistoryBySession(uuid string) ([]game.BiomarkerHistory, error)
}, sessionUUID string) ([]game.BiomarkerHistory, error) {
	return repo.GetHistoryBySession(sessionUUID)
}
