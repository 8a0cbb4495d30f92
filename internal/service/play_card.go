package service

import (
	"errors"
	"time"

	"github.com/pendraco002/homeostasis-cards/internal/constants"
	"github.com/pendraco002/homeostasis-cards/internal/engine"
	"github.com/pendraco002/homeostasis-cards/internal/game"
	"github.com/pendraco002/homeostasis-cards/internal/logging"
)

var (
	ErrSessionNotActive = errors.New("session is not in progress")
	ErrCardNotInHand    = errors.New("card is not in the player's hand")
)

// PlayCard resolves one turn: the named card's effects land on the
// biomarkers, the card moves to the discard pile and the turn counter
// advances. The audit trail is persisted alongside the updated snapshot.
// Returns the updated session and the audit records of this turn.
func PlayCard(repo SessionRepo, sessionUUID, cardID string) (*game.GameSession, []game.BiomarkerHistory, error) {
	s, err := repo.GetSessionByUUID(sessionUUID)
	if err != nil || s == nil {
		return nil, nil, ErrSessionNotFound
	}
	if s.Status != game.StatusInProgress {
		return nil, nil, ErrSessionNotActive
	}

	var played *game.Card
	for i := range s.Hand {
		if s.Hand[i].ID == cardID {
			played = &s.Hand[i]
			break
		}
	}
	if played == nil {
		return nil, nil, ErrCardNotInHand
	}

	ns, hist := engine.ProcessTurn(s, *played)
	ns.LastSave = time.Now()
	for i := range hist {
		hist[i].SessionUUID = ns.SessionUUID
	}

	if err := repo.SaveHistory(hist); err != nil {
		return nil, nil, err
	}
	if err := repo.UpdateSession(ns); err != nil {
		return nil, nil, err
	}

	logging.Info("turn resolved", logging.Fields{
		constants.LogFieldSessionUUID: ns.SessionUUID,
		constants.LogFieldCard:        cardID,
		constants.LogFieldTurn:        ns.TurnCount,
		constants.LogFieldStatus:      string(ns.Status),
		constants.LogFieldScore:       ns.Score,
	})
	return ns, hist, nil
}
