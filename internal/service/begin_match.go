package service

import (
	"errors"
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/config"
	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/engine"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

var ErrSessionNotInLobby = errors.New("session has already started")

// BeginMatch deals the opening hand and moves a lobby session into play.
// The hand size comes from the session's difficulty tier.
func BeginMatch(repo SessionRepo, content *config.Content, sessionUUID string) (*game.GameSession, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if s.Status != game.StatusLobby {
		return nil, ErrSessionNotInLobby
	}
	tuning, ok := content.Difficulty[s.Difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}

	ns := s.Clone()
	for i := 0; i < tuning.StartingHand; i++ {
		next, card := engine.DrawCard(ns)
		if card == nil {
			break
		}
		ns = next
	}
	ns.Status = game.StatusInProgress
	ns.StartTime = time.Now()
	ns.LastSave = ns.StartTime
	ns.Score = engine.Score(ns)

	if err := repo.UpdateSession(ns); err != nil {
		return nil, err
	}
	logging.Info("match started", logging.Fields{
		constants.LogFieldSessionUUID: ns.SessionUUID,
		constants.LogFieldDifficulty:  string(ns.Difficulty),
		constants.LogFieldCount:       len(ns.Hand),
	})
	return ns, nil
}
