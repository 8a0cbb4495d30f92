package service

import (
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/engine"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

// DrawCard moves the top card of the session's deck into its hand and
// persists the result. A nil card with a nil error means both piles were
// empty; nothing is persisted in that case.
func DrawCard(repo SessionRepo, sessionUUID string) (*game.GameSession, *game.Card, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, nil, ErrSessionNotFound
	}
	if s.Status != game.StatusInProgress {
		return nil, nil, ErrSessionNotActive
	}

	ns, card := engine.DrawCard(s)
	if card == nil {
		return ns, nil, nil
	}
	ns.LastSave = time.Now()
	if err := repo.UpdateSession(ns); err != nil {
		return nil, nil, err
	}

	logging.Debug("card drawn", logging.Fields{
		constants.LogFieldSessionUUID: ns.SessionUUID,
		constants.LogFieldCard:        card.ID,
		constants.LogFieldCount:       len(ns.Hand),
	})
	return ns, card, nil
}
