package service

import (
	"errors"
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

var ErrSessionNotPaused = errors.New("session is not paused")

// PauseSession freezes an in-progress match so it can be resumed later.
func PauseSession(repo SessionRepo, sessionUUID string) (*game.GameSession, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if s.Status != game.StatusInProgress {
		return nil, ErrSessionNotActive
	}
	ns := s.Clone()
	ns.Status = game.StatusPaused
	ns.LastSave = time.Now()
	if err := repo.UpdateSession(ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// ResumeSession puts a paused match back into play.
func ResumeSession(repo SessionRepo, sessionUUID string) (*game.GameSession, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if s.Status != game.StatusPaused {
		return nil, ErrSessionNotPaused
	}
	ns := s.Clone()
	ns.Status = game.StatusInProgress
	ns.LastSave = time.Now()
	if err := repo.UpdateSession(ns); err != nil {
		return nil, err
	}
	return ns, nil
}

// AbandonSession deletes the session snapshot. The biomarker audit trail is
// kept for later review.
func AbandonSession(repo SessionRepo, sessionUUID string) error {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return ErrSessionNotFound
	}
	if err := repo.DeleteSession(s.SessionUUID); err != nil {
		return err
	}
	logging.Info("session abandoned", logging.Fields{
		constants.LogFieldSessionUUID: s.SessionUUID,
		constants.LogFieldTurn:        s.TurnCount,
	})
	return nil
}
