package service

import (
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

// HandleIdleSession applies idle resolution for a single session.
// Behavior:
// - a lobby that never started -> deleted
// - an in-progress match -> paused, keeping the snapshot resumable
// Terminal and already-paused sessions are left alone.
func HandleIdleSession(repo interface {
	UpdateSession(*game.GameSession) error
	DeleteSession(string) error
}, s *game.GameSession) error {
	switch s.Status {
	case game.StatusLobby:
		logging.Info("deleting idle lobby session", logging.Fields{
			constants.LogFieldSessionUUID: s.SessionUUID,
		})
		return repo.DeleteSession(s.SessionUUID)
	case game.StatusInProgress:
		s.Status = game.StatusPaused
		s.LastSave = time.Now()
		logging.Info("pausing idle session", logging.Fields{
			constants.LogFieldSessionUUID: s.SessionUUID,
			constants.LogFieldTurn:        s.TurnCount,
		})
		return repo.UpdateSession(s)
	default:
		return nil
	}
}
